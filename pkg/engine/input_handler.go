package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputHandler управляет вводом с клавиатуры и колесика мыши
type InputHandler struct {
	window          *glfw.Window
	tracked         []glfw.Key
	currentKeys     map[glfw.Key]bool
	previousKeys    map[glfw.Key]bool
	mouseWheelDelta float64
}

// NewInputHandler создает обработчик, опрашивающий только переданные клавиши
func NewInputHandler(window *glfw.Window, keys ...glfw.Key) *InputHandler {
	handler := &InputHandler{
		window:       window,
		tracked:      keys,
		currentKeys:  make(map[glfw.Key]bool, len(keys)),
		previousKeys: make(map[glfw.Key]bool, len(keys)),
	}

	// Колесико мыши приходит только через callback
	window.SetScrollCallback(func(_ *glfw.Window, _, yoffset float64) {
		handler.mouseWheelDelta += yoffset
	})

	return handler
}

// Update обновляет состояние ввода; вызывается один раз за кадр после PollEvents
func (ih *InputHandler) Update() {
	for _, key := range ih.tracked {
		ih.previousKeys[key] = ih.currentKeys[key]
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}
}

// IsKeyDown проверяет, нажата ли клавиша в данный момент
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed проверяет, была ли клавиша нажата в этом кадре
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}

// Axis returns +1, -1 or 0 for a pair of held keys
func (ih *InputHandler) Axis(negative, positive glfw.Key) float32 {
	var v float32
	if ih.IsKeyDown(negative) {
		v--
	}
	if ih.IsKeyDown(positive) {
		v++
	}
	return v
}

// GetMouseWheelDelta возвращает изменение колесика мыши с последнего вызова
func (ih *InputHandler) GetMouseWheelDelta() float64 {
	delta := ih.mouseWheelDelta
	ih.mouseWheelDelta = 0
	return delta
}
