package medicines

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-care-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medicines", func(mr chi.Router) {
		mr.Post("/", createMedicineHandler(svc))
		mr.Get("/", listMedicinesHandler(svc))
		mr.Get("/{medicineID}", getMedicineHandler(svc))
		mr.Put("/{medicineID}", updateMedicineHandler(svc))
		mr.Patch("/{medicineID}", updateMedicineHandler(svc))
		mr.Delete("/{medicineID}", deleteMedicineHandler(svc))
	})
}

type createMedicineRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Stock       int     `json:"stock"`
	Price       float64 `json:"price"`
}

type updateMedicineRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Stock       *int     `json:"stock"`
	Price       *float64 `json:"price"`
}

type medicineResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Stock       int       `json:"stock"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// createMedicineHandler godoc
// @Summary Alta de medicamento
// @Tags medicines
// @Accept json
// @Produce json
// @Param payload body createMedicineRequest true "Medicamento"
// @Success 201 {object} medicineResponse
// @Failure 400 {object} respond.MessageBody
// @Router /medicines [post]
func createMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Message(w, http.StatusBadRequest, "invalid json")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			respond.Message(w, http.StatusBadRequest, "name is required")
			return
		}
		if req.Stock < 0 || req.Price < 0 {
			respond.Message(w, http.StatusBadRequest, "stock and price must be >= 0")
			return
		}

		m, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Description: req.Description,
			Stock:       req.Stock,
			Price:       req.Price,
		})
		if err != nil {
			respond.Error(w, err, "medicine not found")
			return
		}
		respond.JSON(w, http.StatusCreated, toMedicineResponse(m))
	}
}

// listMedicinesHandler godoc
// @Summary Listar medicamentos
// @Tags medicines
// @Produce json
// @Param page query int false "Página (desde 1)"
// @Success 200 {object} respond.Page[medicineResponse]
// @Router /medicines [get]
func listMedicinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.List(r.Context(), respond.PageFromQuery(r))
		if err != nil {
			respond.Error(w, err, "")
			return
		}
		respond.JSON(w, http.StatusOK, respond.NewPage(page, toMedicineResponse))
	}
}

// getMedicineHandler godoc
// @Summary Obtener medicamento
// @Tags medicines
// @Produce json
// @Param medicineID path string true "ID del medicamento"
// @Success 200 {object} medicineResponse
// @Failure 404 {object} respond.MessageBody
// @Router /medicines/{medicineID} [get]
func getMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicineID"))
		if err != nil {
			respond.Error(w, err, "medicine not found")
			return
		}
		respond.JSON(w, http.StatusOK, toMedicineResponse(m))
	}
}

// updateMedicineHandler godoc
// @Summary Actualizar medicamento
// @Tags medicines
// @Accept json
// @Produce json
// @Param medicineID path string true "ID del medicamento"
// @Param payload body updateMedicineRequest true "Campos a cambiar"
// @Success 200 {object} medicineResponse
// @Failure 400 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody
// @Router /medicines/{medicineID} [put]
// @Router /medicines/{medicineID} [patch]
func updateMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateMedicineRequest
		if err := dec.Decode(&req); err != nil {
			respond.Message(w, http.StatusBadRequest, "invalid json")
			return
		}

		m, err := svc.Update(r.Context(), chi.URLParam(r, "medicineID"), UpdateInput{
			Name:        req.Name,
			Description: req.Description,
			Stock:       req.Stock,
			Price:       req.Price,
		})
		if err != nil {
			respond.Error(w, err, "medicine not found")
			return
		}
		respond.JSON(w, http.StatusOK, toMedicineResponse(m))
	}
}

// deleteMedicineHandler godoc
// @Summary Eliminar medicamento
// @Tags medicines
// @Produce json
// @Param medicineID path string true "ID del medicamento"
// @Success 200 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody
// @Router /medicines/{medicineID} [delete]
func deleteMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "medicineID")); err != nil {
			respond.Error(w, err, "medicine not found")
			return
		}
		respond.Message(w, http.StatusOK, "medicine deleted")
	}
}

func toMedicineResponse(m Medicine) medicineResponse {
	return medicineResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Stock:       m.Stock,
		Price:       m.Price,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
