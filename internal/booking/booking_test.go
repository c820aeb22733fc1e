package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() Request {
	return Request{
		Name:     "Priya Raman",
		Email:    "priya@example.com",
		Phone:    "+91 98400 12345",
		Date:     time.Now().AddDate(0, 0, 7),
		TimeSlot: "11:00 AM",
		Type:     "Bridal Consultation",
		Location: "Chennai",
	}
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"Valid", func(r *Request) {}, nil},
		{"MissingName", func(r *Request) { r.Name = "  " }, ErrMissingName},
		{"MissingEmail", func(r *Request) { r.Email = "" }, ErrMissingEmail},
		{"PastDate", func(r *Request) { r.Date = time.Now().AddDate(0, 0, -2) }, ErrInvalidDate},
		{"UnknownType", func(r *Request) { r.Type = "Tea Party" }, ErrUnknownType},
		{"UnknownLocation", func(r *Request) { r.Location = "Pune" }, ErrUnknownLocation},
		{"UnknownSlot", func(r *Request) { r.TimeSlot = "05:00 AM" }, ErrUnknownSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClient_Book(t *testing.T) {
	t.Run("AgainstAPI", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/appointments", r.URL.Path)

			var got Request
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, "Bridal Consultation", got.Type)

			_ = json.NewEncoder(w).Encode(Confirmation{Reference: "APT-42", Message: "see you"})
		}))
		defer srv.Close()

		conf, err := NewClient(srv.URL, 0).Book(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, "APT-42", conf.Reference)
	})

	t.Run("OfflineGeneratesReference", func(t *testing.T) {
		conf, err := NewClient("", 0).Book(context.Background(), validRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, conf.Reference)
	})

	t.Run("InvalidRequestNeverSent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))
		defer srv.Close()

		req := validRequest()
		req.TimeSlot = "midnight"

		_, err := NewClient(srv.URL, 0).Book(context.Background(), req)
		assert.ErrorIs(t, err, ErrUnknownSlot)
	})

	t.Run("ServiceError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "full", http.StatusConflict)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, 0).Book(context.Background(), validRequest())
		assert.Error(t, err)
	})
}
