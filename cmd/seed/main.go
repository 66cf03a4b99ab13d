// Command seed loads demo hotels, rooms and facilities for local development.
// Safe to re-run: duplicate titles just add more rows.
package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stayhub/internal/adapters/observability"
	"stayhub/internal/domain"
	"stayhub/internal/shared"
	mysqlrepo "stayhub/internal/storage/mysql"
)

type seedHotel struct {
	hotel domain.HotelAdd
	rooms []domain.RoomAdd
}

func ptr[T any](v T) *T { return &v }

var demo = []seedHotel{
	{
		hotel: domain.HotelAdd{Title: "Sea Breeze Resort", Location: "1 Shoreline Ave, Sochi"},
		rooms: []domain.RoomAdd{
			{Title: "Standard Double", Description: ptr("Garden view"), Price: 90, Quantity: 10},
			{Title: "Deluxe Suite", Description: ptr("Sea view, balcony"), Price: 240, Quantity: 3},
		},
	},
	{
		hotel: domain.HotelAdd{Title: "Fountain Palace", Location: "2 Sheikh St, Dubai"},
		rooms: []domain.RoomAdd{
			{Title: "City Twin", Price: 120, Quantity: 8},
			{Title: "Royal Suite", Description: ptr("Top floor"), Price: 600, Quantity: 1},
		},
	},
	{
		hotel: domain.HotelAdd{Title: "Old Town Inn", Location: "14 Market Sq, Riga"},
		rooms: []domain.RoomAdd{
			{Title: "Single", Price: 55, Quantity: 12},
			{Title: "Family Room", Description: ptr("Two bedrooms"), Price: 150, Quantity: 4},
		},
	},
}

var demoFacilities = []string{"Wi-Fi", "Air conditioning", "Breakfast", "Parking", "Pool"}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	repo := mysqlrepo.New(db)

	var facilityIDs []int64
	for _, title := range demoFacilities {
		f, err := repo.CreateFacility(ctx, title)
		if err != nil {
			log.Fatal().Err(err).Str("facility", title).Msg("seed facility failed")
		}
		facilityIDs = append(facilityIDs, f.ID)
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, sh := range demo {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(sh seedHotel) {
			defer wg.Done()
			defer sem.Release(1)

			h, err := repo.CreateHotel(ctx, sh.hotel)
			if err != nil {
				log.Warn().Err(err).Str("hotel", sh.hotel.Title).Msg("seed hotel failed")
				return
			}
			for _, rm := range sh.rooms {
				rm.HotelID = h.ID
				rm.FacilityIDs = facilityIDs[:2]
				if _, err := repo.CreateRoom(ctx, rm); err != nil {
					log.Warn().Err(err).Str("room", rm.Title).Msg("seed room failed")
					return
				}
			}
			log.Info().Int64("id", h.ID).Str("hotel", h.Title).Msg("seeded")
		}(sh)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
