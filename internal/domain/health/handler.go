package health

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-care-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/health-records", func(hr chi.Router) {
		hr.Post("/", createRecordHandler(svc))
		hr.Get("/", listRecordsHandler(svc))
		hr.Get("/{recordID}", getRecordHandler(svc))
		hr.Put("/{recordID}", updateRecordHandler(svc))
		hr.Patch("/{recordID}", updateRecordHandler(svc))
		hr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

type createRecordRequest struct {
	AnimalName   string `json:"animal_name"`
	MedicineName string `json:"medicine_name,omitempty"`
	Date         string `json:"date"`
	Symptoms     string `json:"symptoms,omitempty"`
	Diagnosis    string `json:"diagnosis,omitempty"`
	Treatment    string `json:"treatment,omitempty"`
}

type updateRecordRequest struct {
	AnimalName   *string `json:"animal_name"`
	MedicineName *string `json:"medicine_name"`
	Date         *string `json:"date"`
	Symptoms     *string `json:"symptoms"`
	Diagnosis    *string `json:"diagnosis"`
	Treatment    *string `json:"treatment"`
}

type recordResponse struct {
	ID           string    `json:"id"`
	AnimalName   string    `json:"animal_name"`
	MedicineName string    `json:"medicine_name,omitempty"`
	Date         string    `json:"date"`
	Symptoms     string    `json:"symptoms,omitempty"`
	Diagnosis    string    `json:"diagnosis,omitempty"`
	Treatment    string    `json:"treatment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// createRecordHandler godoc
// @Summary Registrar evento de salud
// @Tags health
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "Registro de salud"
// @Success 201 {object} recordResponse
// @Failure 400 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody "animal not found (STRICT_ANIMAL_REFERENCES)"
// @Router /health-records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Message(w, http.StatusBadRequest, "invalid json")
			return
		}
		if strings.TrimSpace(req.AnimalName) == "" {
			respond.Message(w, http.StatusBadRequest, "animal_name is required")
			return
		}
		date, err := respond.ParseDate(req.Date)
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			AnimalName:   req.AnimalName,
			MedicineName: req.MedicineName,
			Date:         date,
			Symptoms:     req.Symptoms,
			Diagnosis:    req.Diagnosis,
			Treatment:    req.Treatment,
		})
		if err != nil {
			respond.Error(w, err, "health record not found")
			return
		}
		respond.JSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// listRecordsHandler godoc
// @Summary Listar registros de salud
// @Tags health
// @Produce json
// @Param page query int false "Página (desde 1)"
// @Success 200 {object} respond.Page[recordResponse]
// @Router /health-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.List(r.Context(), respond.PageFromQuery(r))
		if err != nil {
			respond.Error(w, err, "")
			return
		}
		respond.JSON(w, http.StatusOK, respond.NewPage(page, toRecordResponse))
	}
}

// getRecordHandler godoc
// @Summary Obtener registro de salud
// @Tags health
// @Produce json
// @Param recordID path string true "ID del registro"
// @Success 200 {object} recordResponse
// @Failure 404 {object} respond.MessageBody
// @Router /health-records/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			respond.Error(w, err, "health record not found")
			return
		}
		respond.JSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// updateRecordHandler godoc
// @Summary Actualizar registro de salud
// @Tags health
// @Accept json
// @Produce json
// @Param recordID path string true "ID del registro"
// @Param payload body updateRecordRequest true "Campos a cambiar"
// @Success 200 {object} recordResponse
// @Failure 400 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody
// @Router /health-records/{recordID} [put]
// @Router /health-records/{recordID} [patch]
func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateRecordRequest
		if err := dec.Decode(&req); err != nil {
			respond.Message(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			AnimalName:   req.AnimalName,
			MedicineName: req.MedicineName,
			Symptoms:     req.Symptoms,
			Diagnosis:    req.Diagnosis,
			Treatment:    req.Treatment,
		}
		if req.Date != nil {
			d, err := respond.ParseDate(*req.Date)
			if err != nil {
				respond.Message(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
				return
			}
			in.Date = &d
		}

		rec, err := svc.Update(r.Context(), chi.URLParam(r, "recordID"), in)
		if err != nil {
			respond.Error(w, err, "health record not found")
			return
		}
		respond.JSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// deleteRecordHandler godoc
// @Summary Eliminar registro de salud
// @Tags health
// @Produce json
// @Param recordID path string true "ID del registro"
// @Success 200 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody
// @Router /health-records/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			respond.Error(w, err, "health record not found")
			return
		}
		respond.Message(w, http.StatusOK, "health record deleted")
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:           rec.ID,
		AnimalName:   rec.AnimalName,
		MedicineName: rec.MedicineName,
		Date:         rec.Date.Format(respond.DateLayout),
		Symptoms:     rec.Symptoms,
		Diagnosis:    rec.Diagnosis,
		Treatment:    rec.Treatment,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
