package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/rkarmani/memberd/internal/identity/usecase"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
	"github.com/rkarmani/memberd/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for OTP authentication and member profiles.
type HTTPEndpoint struct {
	uc uc
}

// OtpRequest issues or re-delivers a verification code.
// @Summary Request verification code
// @Description Sends a one-time code to the mobile number. Within the cooldown window the request is rate limited; after it, the live code is re-sent unchanged.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body OtpRequestRequest true "OTP request payload"
// @Success 200 {object} router.successResponse{data=OtpRequestResponse} "Code dispatched"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Too many requests"
// @Failure 502 {object} router.errorResponse "Delivery failure"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/otp/request [post]
func (h *HTTPEndpoint) OtpRequest(r *router.Request) (any, error) {
	var req OtpRequestRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OtpRequest(r.Context(), usecase.OtpRequestInput{Identifier: req.Mobile})
	if err != nil {
		return nil, err
	}

	return OtpRequestResponse{Status: resp.Status.String()}, nil
}

// OtpVerify checks a verification code and retires it on success.
// @Summary Verify code
// @Description Verifies the one-time code for the mobile number. A code can be used at most once.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body OtpVerifyRequest true "OTP verify payload"
// @Success 200 {object} router.successResponse{data=OtpVerifyResponse} "Verification result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid or expired code"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/otp/verify [post]
func (h *HTTPEndpoint) OtpVerify(r *router.Request) (any, error) {
	var req OtpVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.OtpVerify(r.Context(), usecase.OtpVerifyInput{
		Identifier: req.Mobile,
		Code:       req.Code,
	}); err != nil {
		return nil, err
	}

	return OtpVerifyResponse{}, nil
}

// Register creates a new member account.
// @Summary Register member
// @Description Creates a member after verifying the one-time code and returns an access token.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} router.successResponse{data=RegisterResponse} "Registration result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid or expired code"
// @Failure 409 {object} router.errorResponse "Mobile already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Mobile: req.Mobile,
		Code:   req.Code,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{AccessToken: resp.AccessToken}, nil
}

// Login authenticates a member with a verified one-time code.
// @Summary Login member
// @Description Verifies the one-time code and returns an access token for the registered member.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid or expired code"
// @Failure 404 {object} router.errorResponse "Mobile not registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Mobile: req.Mobile,
		Code:   req.Code,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken:     resp.AccessToken,
		Name:            resp.Name,
		ProfileComplete: resp.ProfileComplete,
	}, nil
}

// Profile retrieves the current member's profile details.
// @Summary Get profile
// @Description Returns profile information for the authenticated member.
// @Tags Identity, Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile result"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context(), usecase.ProfileInput{})
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:              resp.ID,
		Mobile:          resp.Mobile,
		Email:           resp.Email,
		Name:            resp.Name,
		PhotoURL:        resp.PhotoURL,
		ProfileComplete: resp.ProfileComplete,
		LastLoginAt:     resp.LastLoginAt,
	}, nil
}

// ProfileUpdate updates the current member's profile.
// @Summary Update profile
// @Description Updates name and email for the authenticated member.
// @Tags Identity, Profile
// @Security BearerAuth
// @Accept json
// @Param request body ProfileUpdateRequest true "Profile payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/profile [put]
func (h *HTTPEndpoint) ProfileUpdate(r *router.Request) (any, error) {
	var req ProfileUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.ProfileUpdate(r.Context(), usecase.ProfileUpdateInput{
		Name:  req.Name,
		Email: req.Email,
	})
}

// ProfileUpdatePhoto updates the current member's photo.
// @Summary Update profile photo
// @Description Stores the uploaded photo and saves its URL for the authenticated member.
// @Tags Identity, Profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Param photo formData file true "Member photo"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/profile/photo [put]
func (h *HTTPEndpoint) ProfileUpdatePhoto(r *router.Request) (any, error) {
	ctx := r.Context()

	file, err := r.StreamSingleFile("photo")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	return nil, h.uc.ProfileUpdatePhoto(ctx, usecase.ProfileUpdatePhotoInput{
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	})
}
