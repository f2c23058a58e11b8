package vaccinations

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-care-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vaccinations", func(vr chi.Router) {
		vr.Post("/", createVaccinationHandler(svc))
		vr.Get("/", listVaccinationsHandler(svc))
		vr.Get("/{vaccinationID}", getVaccinationHandler(svc))
		vr.Put("/{vaccinationID}", updateVaccinationHandler(svc))
		vr.Patch("/{vaccinationID}", updateVaccinationHandler(svc))
		vr.Delete("/{vaccinationID}", deleteVaccinationHandler(svc))
	})
}

type createVaccinationRequest struct {
	AnimalName    string `json:"animal_name"`
	VaccineName   string `json:"vaccine_name"`
	ScheduledDate string `json:"scheduled_date"` // YYYY-MM-DD
	Status        string `json:"status,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// updateVaccinationRequest no acepta animal_name.
type updateVaccinationRequest struct {
	VaccineName   *string `json:"vaccine_name"`
	ScheduledDate *string `json:"scheduled_date"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
}

type vaccinationResponse struct {
	ID            string    `json:"id"`
	AnimalName    string    `json:"animal_name"`
	VaccineName   string    `json:"vaccine_name"`
	ScheduledDate string    `json:"scheduled_date"`
	Status        Status    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// createVaccinationHandler godoc
// @Summary Programar vacunación
// @Description El animal debe existir (por nombre) al momento de crear.
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param payload body createVaccinationRequest true "Vacunación"
// @Success 201 {object} vaccinationResponse
// @Failure 400 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody
// @Router /vaccinations [post]
func createVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Message(w, http.StatusBadRequest, "invalid json")
			return
		}
		if strings.TrimSpace(req.AnimalName) == "" || strings.TrimSpace(req.VaccineName) == "" {
			respond.Message(w, http.StatusBadRequest, "animal_name and vaccine_name are required")
			return
		}

		date, err := respond.ParseDate(req.ScheduledDate)
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "scheduled_date must be YYYY-MM-DD")
			return
		}

		var status Status
		if strings.TrimSpace(req.Status) != "" {
			st, ok := ParseStatus(req.Status)
			if !ok {
				respond.Message(w, http.StatusBadRequest, "status must be Pending or Completed")
				return
			}
			status = st
		}

		v, err := svc.Create(r.Context(), CreateInput{
			AnimalName:    req.AnimalName,
			VaccineName:   req.VaccineName,
			ScheduledDate: date,
			Status:        status,
			Notes:         req.Notes,
		})
		if err != nil {
			respond.Error(w, err, "vaccination not found")
			return
		}
		respond.JSON(w, http.StatusCreated, toVaccinationResponse(v))
	}
}

// listVaccinationsHandler godoc
// @Summary Listar vacunaciones
// @Tags vaccinations
// @Produce json
// @Param page query int false "Página (desde 1)"
// @Success 200 {object} respond.Page[vaccinationResponse]
// @Router /vaccinations [get]
func listVaccinationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.List(r.Context(), respond.PageFromQuery(r))
		if err != nil {
			respond.Error(w, err, "")
			return
		}
		respond.JSON(w, http.StatusOK, respond.NewPage(page, toVaccinationResponse))
	}
}

// getVaccinationHandler godoc
// @Summary Obtener vacunación
// @Tags vaccinations
// @Produce json
// @Param vaccinationID path string true "ID de la vacunación"
// @Success 200 {object} vaccinationResponse
// @Failure 404 {object} respond.MessageBody
// @Router /vaccinations/{vaccinationID} [get]
func getVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "vaccinationID"))
		if err != nil {
			respond.Error(w, err, "vaccination not found")
			return
		}
		respond.JSON(w, http.StatusOK, toVaccinationResponse(v))
	}
}

// updateVaccinationHandler godoc
// @Summary Actualizar vacunación
// @Description animal_name no se acepta: una vacunación no se reasigna.
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param vaccinationID path string true "ID de la vacunación"
// @Param payload body updateVaccinationRequest true "Campos a cambiar"
// @Success 200 {object} vaccinationResponse
// @Failure 400 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody
// @Router /vaccinations/{vaccinationID} [put]
// @Router /vaccinations/{vaccinationID} [patch]
func updateVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateVaccinationRequest
		if err := dec.Decode(&req); err != nil {
			respond.Message(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			VaccineName: req.VaccineName,
			Notes:       req.Notes,
		}
		if req.ScheduledDate != nil {
			d, err := respond.ParseDate(*req.ScheduledDate)
			if err != nil {
				respond.Message(w, http.StatusBadRequest, "scheduled_date must be YYYY-MM-DD")
				return
			}
			in.ScheduledDate = &d
		}
		if req.Status != nil {
			st, ok := ParseStatus(*req.Status)
			if !ok {
				respond.Message(w, http.StatusBadRequest, "status must be Pending or Completed")
				return
			}
			in.Status = &st
		}

		v, err := svc.Update(r.Context(), chi.URLParam(r, "vaccinationID"), in)
		if err != nil {
			respond.Error(w, err, "vaccination not found")
			return
		}
		respond.JSON(w, http.StatusOK, toVaccinationResponse(v))
	}
}

// deleteVaccinationHandler godoc
// @Summary Eliminar vacunación
// @Tags vaccinations
// @Produce json
// @Param vaccinationID path string true "ID de la vacunación"
// @Success 200 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody
// @Router /vaccinations/{vaccinationID} [delete]
func deleteVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "vaccinationID")); err != nil {
			respond.Error(w, err, "vaccination not found")
			return
		}
		respond.Message(w, http.StatusOK, "vaccination deleted")
	}
}

func toVaccinationResponse(v Vaccination) vaccinationResponse {
	return vaccinationResponse{
		ID:            v.ID,
		AnimalName:    v.AnimalName,
		VaccineName:   v.VaccineName,
		ScheduledDate: v.ScheduledDate.Format(respond.DateLayout),
		Status:        v.Status,
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
