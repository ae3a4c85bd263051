package inbound

import (
	"github.com/rkarmani/memberd/internal/membership/entity"
	"github.com/rkarmani/memberd/internal/membership/usecase"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
	"github.com/rkarmani/memberd/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for membership lifecycle workflows.
type HTTPEndpoint struct {
	uc uc
}

// AcceptTerms activates the caller's membership.
// @Summary Accept membership terms
// @Description Creates or re-activates the caller's membership with a fresh one-year validity.
// @Tags Membership
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AcceptTermsRequest true "Acceptance payload"
// @Success 200 {object} router.successResponse{data=AcceptTermsResponse} "Activation result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/membership/accept-terms [post]
func (h *HTTPEndpoint) AcceptTerms(r *router.Request) (any, error) {
	var req AcceptTermsRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.AcceptTerms(r.Context(), usecase.AcceptTermsInput{Accepted: req.Accepted})
	if err != nil {
		return nil, err
	}

	return AcceptTermsResponse{
		MembershipNumber: resp.MembershipNumber,
		Status:           resp.Status.String(),
		ValidTill:        resp.ValidTill,
	}, nil
}

// Detail returns the caller's membership.
// @Summary Get own membership
// @Description Returns the membership of the authenticated member.
// @Tags Membership
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=DetailResponse} "Membership detail"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "No membership"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/membership/me [get]
func (h *HTTPEndpoint) Detail(r *router.Request) (any, error) {
	resp, err := h.uc.Detail(r.Context(), usecase.DetailInput{})
	if err != nil {
		return nil, err
	}

	return DetailResponse{
		MembershipID:     resp.MembershipID,
		MembershipNumber: resp.MembershipNumber,
		Status:           resp.Status.String(),
		JoinedDate:       resp.JoinedDate,
		ValidTill:        resp.ValidTill,
		TermsAccepted:    resp.TermsAccepted,
	}, nil
}

// Transition applies a lifecycle action to a membership.
// @Summary Transition membership
// @Description Applies approve, reject, deactivate, extend or reactivate to the membership.
// @Tags Membership, Administration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Membership ID"
// @Param request body TransitionRequest true "Transition payload"
// @Success 200 {object} router.successResponse{data=TransitionResponse} "Transition result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Membership not found"
// @Failure 409 {object} router.errorResponse "Invalid transition"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/membership/memberships/{id}/transition [post]
func (h *HTTPEndpoint) Transition(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req TransitionRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	action := entity.ActionFromString(req.Action)
	if action == entity.ActionUnknown {
		return nil, goerror.NewInvalidInput(nil, "action", "unknown action: "+req.Action)
	}

	resp, err := h.uc.Transition(r.Context(), usecase.TransitionInput{
		MembershipID: id,
		Action:       action,
	})
	if err != nil {
		return nil, err
	}

	return TransitionResponse{
		MembershipID: resp.MembershipID,
		Status:       resp.Status.String(),
		ValidTill:    resp.ValidTill,
	}, nil
}

// Dashboard returns membership statistics.
// @Summary Membership dashboard
// @Description Returns member totals, counts by status and memberships expiring soon.
// @Tags Membership, Administration
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=DashboardResponse} "Dashboard result"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/membership/dashboard [get]
func (h *HTTPEndpoint) Dashboard(r *router.Request) (any, error) {
	resp, err := h.uc.Dashboard(r.Context(), usecase.DashboardInput{})
	if err != nil {
		return nil, err
	}

	return DashboardResponse{
		TotalMembers: resp.TotalMembers,
		Active:       resp.Active,
		Pending:      resp.Pending,
		Inactive:     resp.Inactive,
		Rejected:     resp.Rejected,
		ExpiringSoon: resp.ExpiringSoon,
	}, nil
}

// MemberList returns the member directory.
// @Summary List members
// @Description Returns all members joined with their membership, newest first.
// @Tags Membership, Administration
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=MemberListResponse} "Member directory"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/membership/members [get]
func (h *HTTPEndpoint) MemberList(r *router.Request) (any, error) {
	resp, err := h.uc.MemberList(r.Context(), usecase.MemberListInput{})
	if err != nil {
		return nil, err
	}

	members := lo.Map(resp.Members, func(m usecase.MemberListItem, _ int) MemberListItem {
		status := ""
		if m.MembershipID != nil {
			status = m.Status.String()
		}

		return MemberListItem{
			MemberID:         m.MemberID,
			Name:             m.Name,
			Mobile:           m.Mobile,
			Email:            m.Email,
			JoinedAt:         m.JoinedAt,
			MembershipID:     m.MembershipID,
			MembershipNumber: m.MembershipNumber,
			Status:           status,
			ValidTill:        m.ValidTill,
		}
	})

	return MemberListResponse{Members: members}, nil
}

// Enroll registers a member with a pending membership.
// @Summary Enroll member
// @Description Creates the member when the mobile number is new and a pending membership for it.
// @Tags Membership, Administration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EnrollRequest true "Enrollment payload"
// @Success 200 {object} router.successResponse{data=EnrollResponse} "Enrollment result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 409 {object} router.errorResponse "Membership already exists"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/membership/members [post]
func (h *HTTPEndpoint) Enroll(r *router.Request) (any, error) {
	var req EnrollRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Enroll(r.Context(), usecase.EnrollInput{
		Name:   req.Name,
		Mobile: req.Mobile,
	})
	if err != nil {
		return nil, err
	}

	return EnrollResponse{
		MemberID:         resp.MemberID,
		MembershipID:     resp.MembershipID,
		MembershipNumber: resp.MembershipNumber,
		Status:           resp.Status.String(),
	}, nil
}

// Remove deletes a membership.
// @Summary Remove membership
// @Description Deletes the membership; the member record is kept.
// @Tags Membership, Administration
// @Security BearerAuth
// @Param id path int true "Membership ID"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Membership not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/membership/memberships/{id} [delete]
func (h *HTTPEndpoint) Remove(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.Remove(r.Context(), usecase.RemoveInput{MembershipID: id})
}

// RemoveMember deletes a member and their membership.
// @Summary Remove member
// @Description Deletes the member and cascades to their membership.
// @Tags Membership, Administration
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Member not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/membership/members/{id} [delete]
func (h *HTTPEndpoint) RemoveMember(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.RemoveMember(r.Context(), usecase.RemoveMemberInput{MemberID: id})
}
