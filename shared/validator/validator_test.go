package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"resort/shared/failure"
	"resort/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	GuestName  string `json:"guest_name"     validate:"required,max=20"`
	GuestEmail string `json:"guest_email"    validate:"required,email"`
	CheckIn    string `json:"check_in_date"  validate:"required,date"`
	Guests     int    `json:"guests"         validate:"gte=1"`
	Status     string `json:"status"         validate:"omitempty,oneof=pending confirmed"`
}

func validStay() stayRequest {
	return stayRequest{GuestName: "Ana Reyes", GuestEmail: "ana@example.com", CheckIn: "2026-05-01", Guests: 2}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*stayRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(*stayRequest) {}},
		{name: "missing name", mutate: func(r *stayRequest) { r.GuestName = "" }, wantErr: "guest_name is required"},
		{name: "long name", mutate: func(r *stayRequest) { r.GuestName = strings.Repeat("a", 21) }, wantErr: "guest_name must be at most 20"},
		{name: "bad email", mutate: func(r *stayRequest) { r.GuestEmail = "ana" }, wantErr: "guest_email must be a valid email address"},
		{name: "bad date", mutate: func(r *stayRequest) { r.CheckIn = "01/05/2026" }, wantErr: "check_in_date must be a date formatted as YYYY-MM-DD"},
		{name: "no guests", mutate: func(r *stayRequest) { r.Guests = 0 }, wantErr: "guests must be greater than or equal to 1"},
		{name: "unknown status", mutate: func(r *stayRequest) { r.Status = "lost" }, wantErr: "status must be one of pending confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStay()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		req := stayRequest{}

		err := validator.Validate(strings.NewReader(`{"guest_name":"Ana","guest_email":"ana@example.com","check_in_date":"2026-05-01","guests":1}`), &req)

		require.NoError(t, err)
		assert.Equal(t, "Ana", req.GuestName)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := stayRequest{}

		err := validator.Validate(strings.NewReader(`{"guest_name":`), &req)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "failed to decode request body")
	})
}

type imageRequest struct {
	Image *multipart.FileHeader `json:"image" validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func header(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "villa.png",
		Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
		Size:     size,
	}
}

func TestValidateStruct_Files(t *testing.T) {
	tests := []struct {
		name    string
		image   *multipart.FileHeader
		wantErr string
	}{
		{name: "no file", image: nil},
		{name: "allowed", image: header("image/png", 512<<10)},
		{name: "wrong type", image: header("application/pdf", 10), wantErr: "image must be one of image/png image/jpeg"},
		{name: "too large", image: header("image/jpeg", 2<<20), wantErr: "image must not exceed 1 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&imageRequest{Image: tt.image})

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
