// component/movement.go
package component

// Position — компонент позиции (левый верхний угол, для мишени — центр)
type Position struct {
	X, Y float64
}

// Rect — прямоугольник в координатах поля
type Rect struct {
	X, Y, W, H float64
}
