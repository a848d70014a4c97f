package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/tuffpuff/internal/domain"
)

type addressRequest struct {
	Label       *string  `json:"label"`
	FullAddress *string  `json:"fullAddress"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	IsDefault   *bool    `json:"isDefault"`
}

func (r addressRequest) patch() domain.AddressPatch {
	return domain.AddressPatch{
		Label:       r.Label,
		FullAddress: r.FullAddress,
		Lat:         r.Lat,
		Lng:         r.Lng,
		IsDefault:   r.IsDefault,
	}
}

func (s *Server) listAddresses(c *gin.Context) {
	user := mustUser(c)

	addresses, err := s.addresses.ListAddresses(c.Request.Context(), user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}

	dtos := make([]addressDTO, 0, len(addresses))
	for _, a := range addresses {
		dtos = append(dtos, toAddressDTO(a))
	}

	respond(c, http.StatusOK, dtos)
}

func (s *Server) createAddress(c *gin.Context) {
	user := mustUser(c)

	var body addressRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, domain.InvalidRequest("Invalid request body"))
		return
	}
	if body.Label == nil || body.FullAddress == nil || body.Lat == nil || body.Lng == nil {
		s.fail(c, domain.InvalidRequest("label, fullAddress, lat and lng are required"))
		return
	}

	address := body.patch().Apply(domain.Address{UserID: user.ID})

	created, err := s.addresses.InsertAddress(c.Request.Context(), address)
	if err != nil {
		s.fail(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, toAddressDTO(created), "Address created")
}

func (s *Server) updateAddress(c *gin.Context) {
	user := mustUser(c)

	addressID, err := pathID(c, "id", "Address")
	if err != nil {
		s.fail(c, err)
		return
	}

	var body addressRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, domain.InvalidRequest("Invalid request body"))
		return
	}

	updated, err := s.addresses.UpdateAddress(c.Request.Context(), user.ID, addressID, body.patch())
	if err != nil {
		s.fail(c, err)
		return
	}

	respondMessage(c, http.StatusOK, toAddressDTO(updated), "Address updated")
}

func (s *Server) deleteAddress(c *gin.Context) {
	user := mustUser(c)

	addressID, err := pathID(c, "id", "Address")
	if err != nil {
		s.fail(c, err)
		return
	}

	if err := s.addresses.DeleteAddress(c.Request.Context(), user.ID, addressID); err != nil {
		s.fail(c, err)
		return
	}

	respondMessage(c, http.StatusOK, nil, "Address deleted")
}
