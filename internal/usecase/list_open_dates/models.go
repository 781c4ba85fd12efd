package list_open_dates

import "time"

// Request модель запроса на получение открытых дат
type Request struct {
	From time.Time // Начало диапазона (включительно)
	To   time.Time // Конец диапазона (включительно)
}

// Response модель ответа со списком открытых дат
type Response struct {
	From  time.Time   // Начало запрошенного диапазона
	To    time.Time   // Конец запрошенного диапазона
	Dates []time.Time // Даты, в которые запись в принципе возможна
}
