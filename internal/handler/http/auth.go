package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/service"
	"github.com/mbastos/acervo/internal/store"
	"github.com/mbastos/acervo/internal/utils"
	"github.com/mbastos/acervo/internal/validators"
	"github.com/mbastos/acervo/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// The cap is enforced before any part of the body is parsed.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Err(err).Msg("registration request exceeds the upload size cap")
			writeError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("invalid multipart form was passed")
		writeError(w, "invalid multipart form was passed", http.StatusBadRequest)
		return
	}

	request := models.RegistrationRequest{
		CPF:      r.FormValue("cpf"),
		Password: r.FormValue("password"),
		Name:     r.FormValue("name"),
		Address:  r.FormValue("address"),
		Phone:    r.FormValue("phone"),
	}

	for _, field := range []struct {
		name   string
		target **models.Upload
	}{
		{"document", &request.Document},
		{"residence_proof", &request.ResidenceProof},
	} {
		upload, err := readUpload(r, field.name)
		if err != nil {
			log.Err(err).Str("field", field.name).Msg("error reading uploaded file")
			writeError(w, "error reading uploaded file", http.StatusBadRequest)
			return
		}
		*field.target = upload
	}

	registeredMember, err := h.services.RegistrationService.Register(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, validators.ErrInvalidCPF):
			log.Err(err).Msg("invalid CPF provided")
			writeError(w, "invalid CPF provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrRejectedUpload):
			log.Err(err).Msg("upload rejected")
			writeError(w, "upload rejected", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrCPFAlreadyRegistered):
			log.Err(err).Msg("CPF already registered")
			writeError(w, "CPF already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during member registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	// Registration produces no session; the member logs in separately.
	utils.WriteJSON(w, models.RegisterResponse{ID: registeredMember.ID, CPF: registeredMember.CPF}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// A login never extends prior session state: any session carried by the
	// request is dropped before fresh credentials are checked.
	if token, err := tokenFromCookie(r); err == nil {
		if priorSession, err := h.services.AuthService.Authenticate(ctx, token); err == nil {
			if err := h.services.AuthService.Logout(ctx, priorSession.ID); err != nil {
				log.Err(err).Msg("error occured during dropping prior session")
			}
		}
	}

	session, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			writeError(w, "invalid credentials", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during member login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateSessionToken(ctx, session)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, sessionCookie(token, int(h.sessionTTL.Seconds())))
	utils.WriteJSON(w, models.LoginResponse{DisplayName: session.DisplayName}, http.StatusOK)
}

// logout drops the session carried by the request, if any. The endpoint is
// deliberately unauthenticated so that a stale or already-expired cookie
// still clears cleanly; repeated logouts succeed.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if token, err := tokenFromCookie(r); err == nil {
		if session, err := h.services.AuthService.Authenticate(ctx, token); err == nil {
			if err := h.services.AuthService.Logout(ctx, session.ID); err != nil {
				log.Err(err).Msg("error occured during session deletion")
				writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}
	}

	http.SetCookie(w, sessionCookie("", -1))
	w.WriteHeader(http.StatusNoContent)
}

// readUpload extracts one optional file from the parsed multipart form.
// An absent field is not an error and yields a nil upload.
func readUpload(r *http.Request, field string) (*models.Upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &models.Upload{OriginalName: header.Filename, Content: content}, nil
}

// tokenFromCookie extracts the signed session container from the request's
// session cookie.
func tokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", ErrNoSessionCookie
	}
	if cookie.Value == "" {
		return "", ErrEmptySessionCookie
	}

	return cookie.Value, nil
}
