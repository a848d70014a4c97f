package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/tuffpuff/internal/auth"
	"github.com/nikolayk812/tuffpuff/internal/domain"
)

type syncUserRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	AgeVerified   bool   `json:"ageVerified"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// syncUser verifies the token itself: the caller may not have a user record yet.
func (s *Server) syncUser(c *gin.Context) {
	token := auth.BearerToken(c.Request)
	if token == "" {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	identity, err := s.verifier.Verify(c.Request.Context(), token)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var body syncUserRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			s.fail(c, domain.InvalidRequest("Invalid request body"))
			return
		}
	}

	user, created, err := s.syncer.Sync(c.Request.Context(), identity, auth.SyncRequest{
		Name:          body.Name,
		Phone:         body.Phone,
		AgeVerified:   body.AgeVerified,
		TermsAccepted: body.TermsAccepted,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	respondMessage(c, status, toUserDTO(user), "User synced")
}

func (s *Server) getProfile(c *gin.Context) {
	respond(c, http.StatusOK, toUserDTO(mustUser(c)))
}

func (s *Server) updateProfile(c *gin.Context) {
	user := mustUser(c)

	var body struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, domain.InvalidRequest("Invalid request body"))
		return
	}

	updated, err := s.users.UpdateProfile(c.Request.Context(), user.ID, domain.UserProfilePatch{
		Name:  body.Name,
		Phone: body.Phone,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	respondMessage(c, http.StatusOK, toUserDTO(updated), "Profile updated")
}
