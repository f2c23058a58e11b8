package router

import (
	"database/sql"
	"net/http"

	blobmem "pet-care-records/internal/adapters/blob/memory"
	mem "pet-care-records/internal/adapters/storage/memory"
	pg "pet-care-records/internal/adapters/storage/postgres"
	"pet-care-records/internal/domain/animals"
	"pet-care-records/internal/domain/attachments"
	"pet-care-records/internal/domain/growth"
	"pet-care-records/internal/domain/health"
	"pet-care-records/internal/domain/medicines"
	"pet-care-records/internal/domain/vaccinations"
	"pet-care-records/internal/middleware"
	"pet-care-records/internal/platform/logger"
	"pet-care-records/internal/ports/blob"

	_ "pet-care-records/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si no viene, blobs en memoria (se pierden al reiniciar).
	Blobs blob.Store

	// PublicDir, si viene, se sirve en /storage/ (fotos del blob store local).
	PublicDir string

	Logger logger.Logger

	PageSize               int
	StrictAnimalReferences bool
	MaxUploadSize          int64
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", healthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	if opts.PublicDir != "" {
		r.Handle("/storage/*", http.StripPrefix("/storage/", http.FileServer(http.Dir(opts.PublicDir))))
	}

	var (
		animalRepo      animals.Repository
		vaccinationRepo vaccinations.Repository
		healthRepo      health.Repository
		growthRepo      growth.Repository
		medicineRepo    medicines.Repository
	)

	if opts.DB != nil {
		animalRepo = pg.NewAnimalsRepo(opts.DB)
		vaccinationRepo = pg.NewVaccinationsRepo(opts.DB)
		healthRepo = pg.NewHealthRepo(opts.DB)
		growthRepo = pg.NewGrowthRepo(opts.DB)
		medicineRepo = pg.NewMedicinesRepo(opts.DB)
	} else {
		animalRepo = mem.NewAnimalRepo()
		vaccinationRepo = mem.NewVaccinationRepo()
		healthRepo = mem.NewHealthRepo()
		growthRepo = mem.NewGrowthRepo()
		medicineRepo = mem.NewMedicineRepo()
	}

	blobs := opts.Blobs
	if blobs == nil {
		blobs = blobmem.NewStore()
	}
	photos := attachments.NewManager(blobs, attachments.NamespaceGrowthPhotos, log)

	// Services por módulo. animalsSvc resuelve las referencias por nombre.
	animalsSvc := animals.NewService(animalRepo, opts.PageSize)
	vaccinationsSvc := vaccinations.NewService(vaccinationRepo, animalsSvc, opts.PageSize)
	healthSvc := health.NewService(healthRepo, animalsSvc, health.Options{
		PageSize:      opts.PageSize,
		RequireAnimal: opts.StrictAnimalReferences,
	})
	growthSvc := growth.NewService(growthRepo, photos, animalsSvc, growth.Options{
		PageSize:      opts.PageSize,
		RequireAnimal: opts.StrictAnimalReferences,
	})
	medicinesSvc := medicines.NewService(medicineRepo, opts.PageSize)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc)
	vaccinations.RegisterRoutes(r, vaccinationsSvc)
	health.RegisterRoutes(r, healthSvc)
	growth.RegisterRoutes(r, growthSvc, opts.MaxUploadSize)
	medicines.RegisterRoutes(r, medicinesSvc)

	return r
}

// healthHandler godoc
// @Summary Liveness
// @Tags system
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
