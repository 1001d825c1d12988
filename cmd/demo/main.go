package main

import (
	"go.uber.org/zap"

	"hotel/internal/domain"
	"hotel/internal/modules/reservation"
	"hotel/internal/pkg/logger"
)

func main() {
	log := logger.Must(true)
	defer func() { _ = log.Sync() }()

	manager := reservation.NewManager(log.Named("manager"))

	marc := domain.Client{Name: "Marc", Age: 19, Height: 180}
	laura := domain.Client{Name: "Laura", Age: 16, Height: 160}

	add := func(clients []domain.Client, days int, breakfast bool) {
		r, err := manager.AddReservation(clients, days, breakfast)
		if err != nil {
			log.Info("no reservation created", zap.Error(err))
			return
		}
		log.Info("booked", zap.Object("reservation", r))
	}
	cancel := func(id int) {
		if err := manager.CancelReservation(id); err != nil {
			log.Info("nothing cancelled", zap.Error(err))
		}
	}

	add([]domain.Client{marc}, 2, false)
	// Marc already holds reservation 1
	add([]domain.Client{marc}, 5, true)

	cancel(1)
	cancel(3)

	add([]domain.Client{marc}, 10, true)
	add([]domain.Client{marc, laura}, 5, true)

	for _, r := range manager.GetAllReservations() {
		log.Info("active reservation", zap.Object("reservation", r))
	}
}
