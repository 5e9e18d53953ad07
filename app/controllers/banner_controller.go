package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/pkg/response"
	"github.com/shopkit/admin/pkg/validate"
)

// maxBannerUpload caps the multipart body at 10 MB.
const maxBannerUpload = 10 << 20

type BannerController struct {
	banners *services.BannerService
}

func NewBannerController(banners *services.BannerService) *BannerController {
	return &BannerController{banners: banners}
}

func (c *BannerController) Index(w http.ResponseWriter, r *http.Request) {
	banners, err := c.banners.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, banners)
}

func (c *BannerController) Show(w http.ResponseWriter, r *http.Request) {
	banner, err := c.banners.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, banner)
}

// Store accepts a multipart form: the banner fields plus an optional
// "image" file part.
func (c *BannerController) Store(w http.ResponseWriter, r *http.Request) {
	in, image, filename, ok := c.parseForm(w, r)
	if !ok {
		return
	}
	if image != nil {
		defer image.Close()
	}

	banner, err := c.banners.Create(r.Context(), in, readerOrNil(image), filename)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, banner)
}

func (c *BannerController) Update(w http.ResponseWriter, r *http.Request) {
	in, image, filename, ok := c.parseForm(w, r)
	if !ok {
		return
	}
	if image != nil {
		defer image.Close()
	}

	banner, err := c.banners.Update(r.Context(), chi.URLParam(r, "id"), in, readerOrNil(image), filename)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, banner)
}

func (c *BannerController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.banners.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	response.NoContent(w)
}

func (c *BannerController) parseForm(w http.ResponseWriter, r *http.Request) (services.BannerInput, io.ReadCloser, string, bool) {
	if err := r.ParseMultipartForm(maxBannerUpload); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed multipart form")
		return services.BannerInput{}, nil, "", false
	}

	position, _ := strconv.Atoi(r.FormValue("position"))
	active, _ := strconv.ParseBool(r.FormValue("active"))
	in := services.BannerInput{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		LinkURL:  r.FormValue("link_url"),
		Position: position,
		Active:   active,
	}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return services.BannerInput{}, nil, "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		// No image part is fine, the banner keeps its current one.
		return in, nil, "", true
	}
	return in, file, header.Filename, true
}

// readerOrNil avoids handing the service a typed nil inside an io.Reader.
func readerOrNil(rc io.ReadCloser) io.Reader {
	if rc == nil {
		return nil
	}
	return rc
}
