package router_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	blobmem "pet-care-records/internal/adapters/blob/memory"
	"pet-care-records/internal/platform/respond"
	"pet-care-records/internal/router"

	"github.com/go-chi/chi/v5"
	"github.com/swaggo/swag"
)

// cabecera mínima para que http.DetectContentType devuelva image/png
var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func TestHTTP_EndToEnd_VaccinationRequiresAnimal(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	createJSON(t, ts.URL, "/animals", map[string]any{
		"name":    "Bella",
		"species": "Dog",
		"owner":   "Sam",
	})

	// 1) Animal existente => 201
	vacID := createJSON(t, ts.URL, "/vaccinations", map[string]any{
		"animal_name":    "Bella",
		"vaccine_name":   "Rabies",
		"scheduled_date": "2024-06-01",
		"status":         "Pending",
	})

	// 2) Animal inexistente => 404 "animal not found", sin fila
	{
		st, body := doJSON(t, ts.URL, "POST", "/vaccinations", map[string]any{
			"animal_name":    "Ghost",
			"vaccine_name":   "Rabies",
			"scheduled_date": "2024-06-01",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown animal, got %d body=%s", st, string(body))
		}
		var msg respond.MessageBody
		_ = json.Unmarshal(body, &msg)
		if msg.Message != "animal not found" {
			t.Fatalf("unexpected message: %q", msg.Message)
		}
	}

	// 3) Listado: solo la vacunación de Bella
	{
		st, body := doJSON(t, ts.URL, "GET", "/vaccinations?page=1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var page struct {
			Data []struct {
				ID         string `json:"id"`
				AnimalName string `json:"animal_name"`
			} `json:"data"`
			Total int `json:"total"`
		}
		_ = json.Unmarshal(body, &page)
		if page.Total != 1 || len(page.Data) != 1 || page.Data[0].ID != vacID {
			t.Fatalf("unexpected list: %s", string(body))
		}
	}

	// 4) No se puede reasignar el animal
	{
		st, _ := doJSON(t, ts.URL, "PATCH", "/vaccinations/"+vacID, map[string]any{"animal_name": "Max"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 changing animal_name, got %d", st)
		}
	}

	// 5) Completed y vuelta a Pending
	for _, st := range []string{"Completed", "Pending"} {
		code, body := doJSON(t, ts.URL, "PUT", "/vaccinations/"+vacID, map[string]any{"status": st})
		if code != http.StatusOK {
			t.Fatalf("expected 200 setting status %s, got %d body=%s", st, code, string(body))
		}
	}
}

func TestHTTP_AnimalDelete_DoesNotCascade(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	animalID := createJSON(t, ts.URL, "/animals", map[string]any{"name": "Bella", "species": "Dog", "owner": "Sam"})
	vacID := createJSON(t, ts.URL, "/vaccinations", map[string]any{
		"animal_name":    "Bella",
		"vaccine_name":   "Rabies",
		"scheduled_date": "2024-06-01",
	})

	if st, _ := doJSON(t, ts.URL, "DELETE", "/animals/"+animalID, nil); st != http.StatusOK {
		t.Fatalf("expected 200 delete animal, got %d", st)
	}
	if st, _ := doJSON(t, ts.URL, "GET", "/vaccinations/"+vacID, nil); st != http.StatusOK {
		t.Fatalf("expected vaccination to survive animal delete, got %d", st)
	}
	if st, _ := doJSON(t, ts.URL, "GET", "/animals/"+animalID, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for deleted animal, got %d", st)
	}
}

func TestHTTP_GrowthPhotoLifecycle(t *testing.T) {
	blobs := blobmem.NewStore()
	ts := httptest.NewServer(router.NewRouter(router.Options{Blobs: blobs}))
	defer ts.Close()

	fields := map[string]string{
		"animal_name": "Bella",
		"date":        "2024-02-01",
		"weight":      "12.5",
		"height":      "40",
	}

	// 1) Crear con foto P1
	st, body, _ := doMultipart(t, ts.URL, "POST", "/growth-records", fields, append(pngHeader, "one"...))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create growth, got %d body=%s", st, string(body))
	}
	var rec struct {
		ID        string `json:"id"`
		PhotoPath string `json:"photo_path"`
	}
	_ = json.Unmarshal(body, &rec)
	p1 := rec.PhotoPath
	if !blobs.Exists(p1) {
		t.Fatalf("expected photo %s to be stored", p1)
	}

	// 2) Reemplazar con P2: P1 deja de existir
	st, body, hdr := doMultipart(t, ts.URL, "PUT", "/growth-records/"+rec.ID, nil, append(pngHeader, "two"...))
	if st != http.StatusOK {
		t.Fatalf("expected 200 update growth, got %d body=%s", st, string(body))
	}
	if hdr.Get(respond.HeaderStorageWarning) != "" {
		t.Fatalf("unexpected storage warning")
	}
	_ = json.Unmarshal(body, &rec)
	p2 := rec.PhotoPath
	if p2 == p1 || blobs.Exists(p1) || !blobs.Exists(p2) {
		t.Fatalf("expected P1 retired and P2 stored (p1=%s p2=%s)", p1, p2)
	}

	// 3) Update sin foto: la foto no cambia
	st, body, _ = doMultipart(t, ts.URL, "PATCH", "/growth-records/"+rec.ID, map[string]string{"weight": "13"}, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch growth, got %d body=%s", st, string(body))
	}
	_ = json.Unmarshal(body, &rec)
	if rec.PhotoPath != p2 || !blobs.Exists(p2) {
		t.Fatalf("photo must be untouched without a new upload")
	}

	// 4) Borrar con fallo de storage: 200 + warning, registro eliminado
	blobs.SetFailures(nil, errors.New("disk unavailable"))
	req, _ := http.NewRequest("DELETE", ts.URL+"/growth-records/"+rec.ID, nil)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 delete growth, got %d", res.StatusCode)
	}
	if res.Header.Get(respond.HeaderStorageWarning) == "" {
		t.Fatalf("expected storage warning header on orphaned photo")
	}
	if st, _ := doJSON(t, ts.URL, "GET", "/growth-records/"+rec.ID, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_Growth_StorageWriteFailure(t *testing.T) {
	blobs := blobmem.NewStore()
	blobs.SetFailures(errors.New("bucket gone"), nil)
	ts := httptest.NewServer(router.NewRouter(router.Options{Blobs: blobs}))
	defer ts.Close()

	st, _, _ := doMultipart(t, ts.URL, "POST", "/growth-records", map[string]string{
		"animal_name": "Bella",
		"date":        "2024-02-01",
		"weight":      "1",
		"height":      "1",
	}, append(pngHeader, "x"...))
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502 on storage write failure, got %d", st)
	}

	_, body := doJSON(t, ts.URL, "GET", "/growth-records", nil)
	var page struct {
		Total int `json:"total"`
	}
	_ = json.Unmarshal(body, &page)
	if page.Total != 0 {
		t.Fatalf("expected no rows after failed upload, got %d", page.Total)
	}
}

func TestHTTP_Growth_RejectsNonImage(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _, _ := doMultipart(t, ts.URL, "POST", "/growth-records", map[string]string{
		"animal_name": "Bella",
		"date":        "2024-02-01",
		"weight":      "1",
		"height":      "1",
	}, []byte("plain text, not an image"))
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-image upload, got %d", st)
	}
}

func TestHTTP_List_FixedPageSize(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{PageSize: 5}))
	defer ts.Close()

	for i := 0; i < 7; i++ {
		createJSON(t, ts.URL, "/medicines", map[string]any{
			"name":  "Med " + strconv.Itoa(i),
			"stock": i,
			"price": 1.5,
		})
	}

	for page, want := range map[int]int{1: 5, 2: 2, 3: 0} {
		_, body := doJSON(t, ts.URL, "GET", "/medicines?page="+strconv.Itoa(page), nil)
		var resp struct {
			Data     []json.RawMessage `json:"data"`
			PageSize int               `json:"page_size"`
			Total    int               `json:"total"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Data) != want || resp.PageSize != 5 || resp.Total != 7 {
			t.Fatalf("page %d: got %d items (size=%d total=%d), want %d", page, len(resp.Data), resp.PageSize, resp.Total, want)
		}
	}

	// página enorme: vacía, sin desbordar el offset
	{
		st, body := doJSON(t, ts.URL, "GET", "/medicines?page=6917529027641081857", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 for huge page, got %d body=%s", st, string(body))
		}
		var resp struct {
			Data  []json.RawMessage `json:"data"`
			Total int               `json:"total"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Data) != 0 || resp.Total != 7 {
			t.Fatalf("huge page: got %d items total=%d, want empty", len(resp.Data), resp.Total)
		}
	}

	if st, _ := doJSON(t, ts.URL, "POST", "/medicines", map[string]any{"name": "Bad", "stock": -1}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative stock, got %d", st)
	}
}

func TestHTTP_StrictAnimalReferences(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{StrictAnimalReferences: true}))
	defer ts.Close()

	st, _ := doJSON(t, ts.URL, "POST", "/health-records", map[string]any{
		"animal_name": "Ghost",
		"date":        "2024-05-02",
		"diagnosis":   "flu",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown animal in strict mode, got %d", st)
	}
}

func createJSON(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doJSON(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doJSON(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doMultipart(t *testing.T, baseURL, method, path string, fields map[string]string, photo []byte) (int, []byte, http.Header) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if photo != nil {
		fw, err := mw.CreateFormFile("photo", "photo.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = fw.Write(photo)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody, res.Header
}

func TestSwaggerDoc_CoversEveryRoute(t *testing.T) {
	h := router.NewRouter(router.Options{})
	routes, ok := h.(chi.Routes)
	if !ok {
		t.Fatalf("router does not expose chi.Routes")
	}

	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("swag.ReadDoc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("swagger doc is not valid json: %v", err)
	}

	mounted := map[string]bool{}
	err = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/swagger/") || strings.HasPrefix(route, "/storage/") {
			return nil
		}
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		key := strings.ToLower(method) + " " + route
		mounted[key] = true

		if _, ok := doc.Paths[route][strings.ToLower(method)]; !ok {
			t.Errorf("route %s %s is not documented", method, route)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk: %v", err)
	}

	for path, ops := range doc.Paths {
		for method := range ops {
			if !mounted[method+" "+path] {
				t.Errorf("documented %s %s is not mounted", strings.ToUpper(method), path)
			}
		}
	}
}
