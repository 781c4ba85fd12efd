package exception

import "github.com/ytopal/Barbershop-BookingService/pkg/txmanager"

// Переиспользуем интерфейс исполнителя запросов из txmanager
type DBExecutor = txmanager.DBExecutor
