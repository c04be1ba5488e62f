package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/esonge/storefront-backend/api/middleware"
	"github.com/esonge/storefront-backend/api/responses"
	"github.com/esonge/storefront-backend/api/validators"
	authsvc "github.com/esonge/storefront-backend/internal/auth"
	pkgAuth "github.com/esonge/storefront-backend/pkg/auth"
	"github.com/esonge/storefront-backend/pkg/config"
	pkgerrors "github.com/esonge/storefront-backend/pkg/errors"
	"github.com/esonge/storefront-backend/pkg/logger"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User  authsvc.User `json:"user"`
	Token string       `json:"token"`
}

type sessionResponse struct {
	User      authsvc.User      `json:"user"`
	Addresses []authsvc.Address `json:"addresses"`
}

// AuthLogin authenticates the demo credential and issues an access token.
// Unrecognized credentials fail with unauthorized; this is the storefront's
// only explicit failure signal.
func AuthLogin(svc authsvc.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ok, err := svc.Login(r.Context(), payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "login interrupted"))
			return
		}
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials"))
			return
		}

		user, _ := svc.CurrentUser()
		token, err := pkgAuth.MintAccessToken(jwtCfg, time.Now(), pkgAuth.AccessTokenPayload{
			UserID: user.ID,
			Email:  user.Email,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token"))
			return
		}

		responses.WriteSuccess(w, loginResponse{User: user, Token: token})
	}
}

// AuthLogout clears the session unconditionally.
func AuthLogout(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		svc.Logout(r.Context())
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

// AuthMe serves the current profile and address book.
func AuthMe(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		user, ok := svc.CurrentUser()
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session"))
			return
		}

		// A token outlives the session it was minted for; reject it once the
		// server-side identity no longer matches the claims.
		if id := middleware.UserIDFromContext(r.Context()); id != "" && id != user.ID {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session mismatch"))
			return
		}
		if email := middleware.EmailFromContext(r.Context()); email != "" && !strings.EqualFold(email, user.Email) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session mismatch"))
			return
		}

		responses.WriteSuccess(w, sessionResponse{User: user, Addresses: svc.Addresses()})
	}
}

// AuthUpdateProfile merges name/phone into the current profile.
func AuthUpdateProfile(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.ProfilePatch
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.UpdateProfile(r.Context(), payload)

		user, ok := svc.CurrentUser()
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session"))
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// AddressList serves the address book.
func AddressList(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.Addresses())
	}
}

// AddressAdd appends a new address to the book.
func AddressAdd(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.AddressInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		addr, ok := svc.AddAddress(r.Context(), payload)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, addr)
	}
}

// AddressUpdate merges fields into an address; unknown ids are no-ops.
func AddressUpdate(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.AddressPatch
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.UpdateAddress(r.Context(), chi.URLParam(r, "addressId"), payload)
		responses.WriteSuccess(w, svc.Addresses())
	}
}

// AddressRemove deletes an address, promoting a new default when needed.
func AddressRemove(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		svc.RemoveAddress(r.Context(), chi.URLParam(r, "addressId"))
		responses.WriteSuccess(w, svc.Addresses())
	}
}

// AddressSetDefault exclusively selects the shipping default.
func AddressSetDefault(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		svc.SetDefaultAddress(r.Context(), chi.URLParam(r, "addressId"))
		responses.WriteSuccess(w, svc.Addresses())
	}
}

// AddressDefault serves the current shipping default.
func AddressDefault(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		addr, ok := svc.DefaultAddress()
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "no default address"))
			return
		}

		responses.WriteSuccess(w, addr)
	}
}
