package domain

import "time"

// SessionListFilter фильтр для выборки сессий.
// Используется дашбордом и ассистентом (фильтрация по цвету, марке,
// этажу и нижней границе времени въезда).
type SessionListFilter struct {
	Color        *string        // Фильтр по цвету автомобиля (без учета регистра)
	Brand        *string        // Фильтр по марке автомобиля (без учета регистра)
	Floor        *int           // Фильтр по этажу
	EnteredAfter *time.Time     // Нижняя граница entry_time ("за последние N часов")
	Status       *SessionStatus // Фильтр по статусу (nil - все сессии)
}

// OpenOnly returns a copy of the filter narrowed to open sessions.
func (f SessionListFilter) OpenOnly() SessionListFilter {
	status := StatusOpen
	f.Status = &status
	return f
}

// ClosedOnly returns a copy of the filter narrowed to closed sessions.
func (f SessionListFilter) ClosedOnly() SessionListFilter {
	status := StatusClosed
	f.Status = &status
	return f
}
