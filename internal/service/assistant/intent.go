package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// IntentKind закрытое множество поддерживаемых намерений.
// Каждое намерение отображается ровно в один read-вызов леджера -
// никакой динамической диспетчеризации "спроси что угодно".
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentStatus             // общий статус парковки / занятость
	IntentAvailability       // сколько мест свободно
	IntentCurrentlyParked    // сколько машин сейчас стоит
	IntentCountByColor       // сколько машин цвета X
	IntentCountByBrand       // сколько машин марки X
	IntentColorDistribution  // распределение по цветам
	IntentBrandDistribution  // распределение по маркам
	IntentFloorDistribution  // распределение по этажам
	IntentRevenueWindow      // выручка за последние N часов
)

// Intent распознанное намерение с извлеченными параметрами
type Intent struct {
	Kind        IntentKind
	Color       string // для IntentCountByColor
	Brand       string // для IntentCountByBrand
	WindowHours int    // для IntentRevenueWindow
}

// Словари для извлечения параметров из вопроса
var knownColors = []string{
	"red", "blue", "black", "white", "green", "yellow",
	"silver", "gray", "grey", "orange", "brown", "purple",
}

var knownBrands = []string{
	"toyota", "honda", "ford", "bmw", "mercedes", "audi",
	"tesla", "nissan", "chevrolet", "hyundai", "kia", "volkswagen",
}

var hoursPattern = regexp.MustCompile(`(\d+)\s*hours?`)

// ParseIntent разбирает вопрос пользователя в намерение.
// Ключевые слова проверяются от специфичных к общим: вопрос про
// выручку с упоминанием часов не должен попасть в статус.
func ParseIntent(question string) Intent {
	q := strings.ToLower(question)

	// Выручка за окно времени
	if strings.Contains(q, "revenue") || strings.Contains(q, "earn") {
		intent := Intent{Kind: IntentRevenueWindow, WindowHours: 24}
		if m := hoursPattern.FindStringSubmatch(q); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				intent.WindowHours = n
			}
		}
		return intent
	}

	// Распределения
	if strings.Contains(q, "distribution") || strings.Contains(q, "repartition") || strings.Contains(q, "breakdown") {
		switch {
		case strings.Contains(q, "color") || strings.Contains(q, "colour"):
			return Intent{Kind: IntentColorDistribution}
		case strings.Contains(q, "brand") || strings.Contains(q, "make"):
			return Intent{Kind: IntentBrandDistribution}
		case strings.Contains(q, "floor"):
			return Intent{Kind: IntentFloorDistribution}
		}
	}

	// Подсчет по цвету / марке ("how many red cars", "how many toyotas")
	for _, color := range knownColors {
		if strings.Contains(q, color) {
			return Intent{Kind: IntentCountByColor, Color: color}
		}
	}
	for _, brand := range knownBrands {
		if strings.Contains(q, brand) {
			return Intent{Kind: IntentCountByBrand, Brand: brand}
		}
	}

	// Свободные места
	if strings.Contains(q, "available") || strings.Contains(q, "free spot") || strings.Contains(q, "free spots") {
		return Intent{Kind: IntentAvailability}
	}

	// Сколько машин сейчас стоит
	if strings.Contains(q, "how many cars") || strings.Contains(q, "how many vehicles") ||
		strings.Contains(q, "currently parked") {
		return Intent{Kind: IntentCurrentlyParked}
	}

	// Общий статус
	if strings.Contains(q, "status") || strings.Contains(q, "occupancy") || strings.Contains(q, "parking") {
		return Intent{Kind: IntentStatus}
	}

	return Intent{Kind: IntentUnknown}
}
