package media

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"gameotion/internal/common"
	"gameotion/internal/config"
	"gameotion/internal/dbmongo"
)

// maxUploadSize caps multipart uploads at 25 MB.
const maxUploadSize = 25 << 20

type MediaHandlers struct {
	storage *dbmongo.MediaStorage
	baseURL string
}

func NewMediaHandlers(mongoClient *dbmongo.MongoClient, cfg *config.Config) *MediaHandlers {
	return &MediaHandlers{
		storage: dbmongo.NewMediaStorage(mongoClient),
		baseURL: cfg.Media.BaseURL,
	}
}

func (h *MediaHandlers) Register(public, protected *mux.Router) {
	public.HandleFunc("/media/{fileId}", h.ServeFile).Methods("GET")
	protected.HandleFunc("/media", h.Upload).Methods("POST")
}

// ServeFile streams a GridFS file to the client.
func (h *MediaHandlers) ServeFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	fileReader, mediaFile, err := h.storage.DownloadFile(r.Context(), fileID)
	if err != nil {
		common.WriteError(w, http.StatusNotFound, "file_not_found")
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(mediaFile.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", mediaFile.Size))

	if _, err := io.Copy(w, fileReader); err != nil {
		log.Printf("Error streaming file %s: %v", fileID, err)
	}
}

// Upload accepts a multipart form with a "file" field and stores it in
// GridFS. The response carries the id plus a URL the feed can embed.
func (h *MediaHandlers) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_multipart_form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "file_required")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	uploaded, err := h.storage.UploadFile(r.Context(), header.Filename, mimeType, userID, file)
	if err != nil {
		log.Printf("Upload failed for %s: %v", header.Filename, err)
		common.WriteError(w, http.StatusInternalServerError, "upload_failed")
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"id":   uploaded.ID,
		"url":  h.baseURL + uploaded.ID,
		"type": uploaded.FileType,
		"size": uploaded.Size,
	})
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}
