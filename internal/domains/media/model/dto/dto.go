package dto

import (
	"mime/multipart"
)

// Directory is the bucket folder uploads land in.
const Directory = "packages"

type UploadRequest struct {
	Files []*multipart.FileHeader `json:"files" swaggerignore:"true" validate:"required,min=1,max=10,dive,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
}

type UploadResponse struct {
	URLs []string `json:"urls"`
}

type DeleteRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,dive,url"`
}
