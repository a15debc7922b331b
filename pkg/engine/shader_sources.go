package engine

// Shader sources for presenting CPU-shaded frames

// Fullscreen quad; the frame's top row maps to the top of the window
const blitVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform vec2 scale;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos * scale, 0.0, 1.0);
    TexCoord = aTexCoord;
}
`

// Samples the uploaded frame as-is
const blitFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D frameTexture;

void main() {
    FragColor = vec4(texture(frameTexture, TexCoord).rgb, 1.0);
}
`
