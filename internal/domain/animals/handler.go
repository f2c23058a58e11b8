package animals

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-care-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))

		// El cliente móvil usa PUT con semántica parcial; aceptamos ambos.
		ar.Put("/{animalID}", updateAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))

		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

type createAnimalRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Owner   string `json:"owner"`
}

type updateAnimalRequest struct {
	Name    *string `json:"name"`
	Species *string `json:"species"`
	Owner   *string `json:"owner"`
}

type animalResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Registra un animal. El nombre no es único; otros registros lo referencian por nombre.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {object} respond.MessageBody
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Message(w, http.StatusBadRequest, "invalid json")
			return
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Species) == "" || strings.TrimSpace(req.Owner) == "" {
			respond.Message(w, http.StatusBadRequest, "name, species and owner are required")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Species: req.Species,
			Owner:   req.Owner,
		})
		if err != nil {
			respond.Error(w, err, "animal not found")
			return
		}

		respond.JSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Más recientes primero, paginado por offset.
// @Tags animals
// @Produce json
// @Param page query int false "Página (desde 1)"
// @Success 200 {object} respond.Page[animalResponse]
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.List(r.Context(), respond.PageFromQuery(r))
		if err != nil {
			respond.Error(w, err, "")
			return
		}
		respond.JSON(w, http.StatusOK, respond.NewPage(page, toAnimalResponse))
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {object} respond.MessageBody
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			respond.Error(w, err, "animal not found")
			return
		}
		respond.JSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal
// @Description Campos ausentes no cambian. Renombrar no toca los registros que usan el nombre anterior.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a cambiar"
// @Success 200 {object} animalResponse
// @Failure 400 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody
// @Router /animals/{animalID} [put]
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateAnimalRequest
		if err := dec.Decode(&req); err != nil {
			respond.Message(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), UpdateInput{
			Name:    req.Name,
			Species: req.Species,
			Owner:   req.Owner,
		})
		if err != nil {
			respond.Error(w, err, "animal not found")
			return
		}
		respond.JSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Eliminar animal
// @Description No borra vacunaciones, registros de salud ni de crecimiento que lo nombran.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			respond.Error(w, err, "animal not found")
			return
		}
		respond.Message(w, http.StatusOK, "animal deleted")
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:        a.ID,
		Name:      a.Name,
		Species:   a.Species,
		Owner:     a.Owner,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
