package growth

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// FormPhoto es el campo multipart con la imagen.
const FormPhoto = "photo"

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

type handler struct {
	svc       *Service
	maxUpload int64
}

func RegisterRoutes(r chi.Router, svc *Service, maxUpload int64) {
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}
	h := handler{svc: svc, maxUpload: maxUpload}

	r.Route("/growth-records", func(gr chi.Router) {
		gr.Post("/", h.create)
		gr.Get("/", h.list)
		gr.Get("/{recordID}", h.get)
		gr.Put("/{recordID}", h.update)
		gr.Patch("/{recordID}", h.update)
		gr.Delete("/{recordID}", h.delete)
	})
}

type recordResponse struct {
	ID         string    `json:"id"`
	AnimalName string    `json:"animal_name"`
	Date       string    `json:"date"`
	Weight     float64   `json:"weight"`
	Height     float64   `json:"height"`
	PhotoPath  string    `json:"photo_path"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// create godoc
// @Summary Registrar medición de crecimiento
// @Description multipart/form-data: animal_name, date, weight, height, notes y photo (jpeg/png/gif).
// @Tags growth
// @Accept mpfd
// @Produce json
// @Param animal_name formData string true "Nombre del animal"
// @Param date formData string true "YYYY-MM-DD"
// @Param weight formData number true "Peso"
// @Param height formData number true "Altura"
// @Param notes formData string false "Notas"
// @Param photo formData file true "Foto"
// @Success 201 {object} recordResponse
// @Failure 400 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody "animal not found (STRICT_ANIMAL_REFERENCES)"
// @Failure 413 {object} respond.MessageBody
// @Failure 502 {object} respond.MessageBody
// @Router /growth-records [post]
func (h handler) create(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	in := CreateInput{
		AnimalName: form.Value("animal_name"),
		Notes:      form.Value("notes"),
	}
	if strings.TrimSpace(in.AnimalName) == "" {
		respond.Message(w, http.StatusBadRequest, "animal_name is required")
		return
	}

	var err error
	if in.Date, err = respond.ParseDate(form.Value("date")); err != nil {
		respond.Message(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	if in.Weight, err = parseMeasure(form.Value("weight")); err != nil {
		respond.Message(w, http.StatusBadRequest, "weight must be a non-negative number")
		return
	}
	if in.Height, err = parseMeasure(form.Value("height")); err != nil {
		respond.Message(w, http.StatusBadRequest, "height must be a non-negative number")
		return
	}

	photo, err := form.Photo()
	if err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	if photo == nil {
		respond.Message(w, http.StatusBadRequest, "photo is required")
		return
	}
	in.Photo = *photo

	res, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respond.Error(w, err, "growth record not found")
		return
	}
	respond.JSON(w, http.StatusCreated, toRecordResponse(res.Record))
}

// list godoc
// @Summary Listar mediciones de crecimiento
// @Tags growth
// @Produce json
// @Param page query int false "Página (desde 1)"
// @Success 200 {object} respond.Page[recordResponse]
// @Router /growth-records [get]
func (h handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), respond.PageFromQuery(r))
	if err != nil {
		respond.Error(w, err, "")
		return
	}
	respond.JSON(w, http.StatusOK, respond.NewPage(page, toRecordResponse))
}

// get godoc
// @Summary Obtener medición
// @Tags growth
// @Produce json
// @Param recordID path string true "ID del registro"
// @Success 200 {object} recordResponse
// @Failure 404 {object} respond.MessageBody
// @Router /growth-records/{recordID} [get]
func (h handler) get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		respond.Error(w, err, "growth record not found")
		return
	}
	respond.JSON(w, http.StatusOK, toRecordResponse(rec))
}

// update godoc
// @Summary Actualizar medición
// @Description Campos ausentes no cambian. Con photo se reemplaza la foto y la anterior se borra.
// @Tags growth
// @Accept mpfd
// @Produce json
// @Param recordID path string true "ID del registro"
// @Param animal_name formData string false "Nombre del animal"
// @Param date formData string false "YYYY-MM-DD"
// @Param weight formData number false "Peso"
// @Param height formData number false "Altura"
// @Param notes formData string false "Notas"
// @Param photo formData file false "Foto nueva"
// @Success 200 {object} recordResponse
// @Header 200 {string} X-Storage-Warning "La foto anterior no pudo borrarse"
// @Failure 400 {object} respond.MessageBody
// @Failure 404 {object} respond.MessageBody
// @Failure 413 {object} respond.MessageBody
// @Failure 502 {object} respond.MessageBody
// @Router /growth-records/{recordID} [put]
// @Router /growth-records/{recordID} [patch]
func (h handler) update(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	var in UpdateInput
	if v, ok := form.Lookup("animal_name"); ok {
		in.AnimalName = &v
	}
	if v, ok := form.Lookup("notes"); ok {
		in.Notes = &v
	}
	if v, ok := form.Lookup("date"); ok {
		d, err := respond.ParseDate(v)
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		in.Date = &d
	}
	if v, ok := form.Lookup("weight"); ok {
		f, err := parseMeasure(v)
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "weight must be a non-negative number")
			return
		}
		in.Weight = &f
	}
	if v, ok := form.Lookup("height"); ok {
		f, err := parseMeasure(v)
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "height must be a non-negative number")
			return
		}
		in.Height = &f
	}

	photo, err := form.Photo()
	if err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	in.Photo = photo

	res, err := h.svc.Update(r.Context(), chi.URLParam(r, "recordID"), in)
	if err != nil {
		respond.Error(w, err, "growth record not found")
		return
	}
	setStorageWarning(w, res)
	respond.JSON(w, http.StatusOK, toRecordResponse(res.Record))
}

// delete godoc
// @Summary Eliminar medición
// @Description Borra la foto (best effort) y después el registro.
// @Tags growth
// @Produce json
// @Param recordID path string true "ID del registro"
// @Success 200 {object} respond.MessageBody
// @Header 200 {string} X-Storage-Warning "La foto no pudo borrarse"
// @Failure 404 {object} respond.MessageBody
// @Router /growth-records/{recordID} [delete]
func (h handler) delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Delete(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		respond.Error(w, err, "growth record not found")
		return
	}
	setStorageWarning(w, res)
	respond.Message(w, http.StatusOK, "growth record deleted")
}

func setStorageWarning(w http.ResponseWriter, res Result) {
	if res.RetireErr != nil {
		w.Header().Set(respond.HeaderStorageWarning, "previous photo could not be removed")
	}
}

// multipartForm envuelve el form ya parseado.
type multipartForm struct {
	form *multipart.Form
}

func (h handler) parseForm(w http.ResponseWriter, r *http.Request) (multipartForm, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			respond.Message(w, http.StatusRequestEntityTooLarge, "upload too large")
			return multipartForm{}, false
		}
		respond.Message(w, http.StatusBadRequest, "expected multipart/form-data")
		return multipartForm{}, false
	}
	return multipartForm{form: r.MultipartForm}, true
}

func (f multipartForm) Lookup(key string) (string, bool) {
	vs, ok := f.form.Value[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func (f multipartForm) Value(key string) string {
	v, _ := f.Lookup(key)
	return v
}

// Photo devuelve nil si el campo no vino. El content type se detecta por
// contenido, no por el header del cliente.
func (f multipartForm) Photo() (*Photo, error) {
	files := f.form.File[FormPhoto]
	if len(files) == 0 {
		return nil, nil
	}

	file, err := files[0].Open()
	if err != nil {
		return nil, errors.New("photo could not be read")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("photo could not be read")
	}
	if len(data) == 0 {
		return nil, errors.New("photo is empty")
	}

	ct := http.DetectContentType(data)
	if !allowedPhotoTypes[ct] {
		return nil, errors.New("photo must be jpeg, png or gif")
	}
	return &Photo{Data: data, ContentType: ct}, nil
}

func parseMeasure(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, errors.New("negative measure")
	}
	return f, nil
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:         rec.ID,
		AnimalName: rec.AnimalName,
		Date:       rec.Date.Format(respond.DateLayout),
		Weight:     rec.Weight,
		Height:     rec.Height,
		PhotoPath:  rec.PhotoPath,
		Notes:      rec.Notes,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
