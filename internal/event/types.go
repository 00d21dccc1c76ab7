// internal/event/types.go
package event

const (
	GameStarted      EventType = "GameStarted"      // Новая игра началась
	GameOver         EventType = "GameOver"         // Три промаха подряд
	ProjectileFired  EventType = "ProjectileFired"  // Выстрел
	ProjectileMissed EventType = "ProjectileMissed" // Снаряд ушёл за верхнюю границу
	TargetHit        EventType = "TargetHit"        // Попадание в мишень
	ScoreChanged     EventType = "ScoreChanged"     // Data: int, новый счёт
)
