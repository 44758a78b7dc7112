package main

import (
	"log"

	api "agenda-backend/cmd/api"
	agendadomain "agenda-backend/internal/agenda/domain"
	agendaRepo "agenda-backend/internal/agenda/repository"
	agendaUsecase "agenda-backend/internal/agenda/usecase"
	authdomain "agenda-backend/internal/auth/domain"
	authRepo "agenda-backend/internal/auth/repository"
	authUsecase "agenda-backend/internal/auth/usecase"
	"agenda-backend/pkg/config"
	"agenda-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.Usuario{}, &agendadomain.Categoria{}, &agendadomain.Actividad{}, &agendadomain.Recordatorio{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	categoriaRepo := agendaRepo.NewCategoriaRepository(db)
	actividadRepo := agendaRepo.NewActividadRepository(db)
	recordatorioRepo := agendaRepo.NewRecordatorioRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	agendaUsecaseInstance := agendaUsecase.NewAgendaUsecase(categoriaRepo, actividadRepo, recordatorioRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, agendaUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
