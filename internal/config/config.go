// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TicksPerSec  = 60

	// Пушка
	TurretWidth   = 50
	TurretHeight  = 80
	TurretStep    = 20
	TurretOffsetX = 25  // половина ширины, пушка стартует по центру
	TurretOffsetY = 100 // отступ от нижнего края

	// Снаряд
	ProjectileWidth  = 5
	ProjectileHeight = 10
	ProjectileSpeed  = 5.0 // пикселей за кадр

	// Мишень
	TargetStartX  = 100.0
	TargetStartY  = 50.0
	TargetRadius  = 20.0
	TargetStartDX = 2.0
	SpeedUpScore  = 50  // после этого счёта каждое попадание ускоряет мишень
	SpeedUpFactor = 1.1 // без верхней границы

	// Счёт
	HitReward            = 5
	MissPenalty          = 2
	MaxConsecutiveMisses = 3

	BestScoreKey = "highScore"

	// Надписи
	StartPromptText   = "Press Enter or Click Start to Begin"
	StartPromptSize   = 24.0
	StartPromptOffset = 200 // сдвиг влево от центра
	GameOverText      = "Game Over"
	GameOverSize      = 48.0
	GameOverOffset    = 100

	// Кнопка старта и HUD
	StartButtonX      = 10
	StartButtonY      = 10
	StartButtonWidth  = 110
	StartButtonHeight = 30
	StartButtonLabel  = "Start Game"
	HUDTextSize       = 16.0
	HUDScoreX         = ScreenWidth - 150
	HUDScoreY         = 26
	HUDLineHeight     = 20
)

var (
	BackgroundColor   = color.RGBA{235, 235, 235, 255}
	GameOverColor     = color.RGBA{0x88, 0x08, 0x08, 255}
	GameOverTextColor = color.RGBA{255, 255, 255, 255}
	PromptColor       = color.RGBA{0, 0, 0, 255}
	TurretColor       = color.RGBA{70, 70, 80, 255}
	BarrelColor       = color.RGBA{40, 40, 45, 255}
	ProjectileColor   = color.RGBA{230, 160, 20, 255}
	TargetColor       = color.RGBA{90, 170, 60, 255}
	TargetEyeColor    = color.RGBA{255, 255, 255, 255}
	ButtonColor       = color.RGBA{70, 130, 180, 255}
	ButtonTextColor   = color.RGBA{255, 255, 255, 255}
	HUDTextColor      = color.RGBA{20, 20, 30, 255}
)
