package handlers

import (
	"errors"
	"net/http"

	"github.com/cyphera/settlement-engine/libs/go/helpers"
	"github.com/cyphera/settlement-engine/libs/go/types/api/requests"
	"github.com/cyphera/settlement-engine/libs/go/types/api/responses"
	"github.com/cyphera/settlement-engine/libs/go/types/business"
	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExitHandler struct {
	common *CommonServices
}

// NewExitHandler creates a handler for exit inspection endpoints
func NewExitHandler(common *CommonServices) *ExitHandler {
	return &ExitHandler{common: common}
}

// DecodeExit godoc
// @Summary Decode an encoded exit
// @Description Decodes a canonical hex-encoded exit into its structured form
// @Tags exits
// @Accept json
// @Produce json
// @Param request body requests.DecodeExitRequest true "Encoded exit"
// @Success 200 {object} responses.DecodeExitResponse
// @Router /exits/decode [post]
func (h *ExitHandler) DecodeExit(c *gin.Context) {
	var req requests.DecodeExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	encoded, err := hexutil.Decode(req.EncodedExit)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Encoded exit is not valid hex", err)
		return
	}

	exit, err := helpers.DecodeExit(encoded)
	if err != nil {
		if errors.Is(err, helpers.ErrMalformedEncoding) {
			sendError(c, http.StatusBadRequest, "Encoded exit is malformed", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to decode exit", err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.DecodeExitResponse{
		Exit: helpers.ToExitResponse(exit),
	})
}

// EncodeExit godoc
// @Summary Encode an exit
// @Description Encodes a structured exit into its canonical hex form
// @Tags exits
// @Accept json
// @Produce json
// @Param request body requests.EncodeExitRequest true "Structured exit"
// @Success 200 {object} responses.EncodeExitResponse
// @Router /exits/encode [post]
func (h *ExitHandler) EncodeExit(c *gin.Context) {
	var req requests.EncodeExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	exit, err := helpers.FromEncodeExitRequest(req)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid exit", err)
		return
	}

	encoded, err := helpers.EncodeExit(exit)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to encode exit", err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.EncodeExitResponse{
		EncodedExit: hexutil.Encode(encoded),
	})
}

// HashExit godoc
// @Summary Hash an encoded exit
// @Description Computes the keccak256 hash of an encoded exit after
// round-tripping it through the codec
// @Tags exits
// @Accept json
// @Produce json
// @Param request body requests.HashExitRequest true "Encoded exit"
// @Success 200 {object} responses.HashExitResponse
// @Router /exits/hash [post]
func (h *ExitHandler) HashExit(c *gin.Context) {
	var req requests.HashExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	exit, err := h.decodeEncodedExit(c, req.EncodedExit)
	if err != nil {
		return
	}

	hash, err := helpers.HashExit(exit)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to hash exit", err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.HashExitResponse{Hash: hash.Hex()})
}

// DiffExits godoc
// @Summary Compare two encoded exits
// @Description Reports whether two encoded exits are semantically equal
// @Tags exits
// @Accept json
// @Produce json
// @Param request body requests.DiffExitsRequest true "Encoded exit pair"
// @Success 200 {object} responses.DiffExitsResponse
// @Router /exits/diff [post]
func (h *ExitHandler) DiffExits(c *gin.Context) {
	var req requests.DiffExitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	left, err := h.decodeEncodedExit(c, req.LeftEncodedExit)
	if err != nil {
		return
	}
	right, err := h.decodeEncodedExit(c, req.RightEncodedExit)
	if err != nil {
		return
	}

	equal, err := helpers.ExitsEqual(left, right)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to compare exits", err)
		return
	}

	if !equal {
		h.common.logger.Debug("exits differ",
			zap.String("left", spew.Sdump(left)),
			zap.String("right", spew.Sdump(right)),
		)
	}

	sendSuccess(c, http.StatusOK, responses.DiffExitsResponse{Equal: equal})
}

// decodeEncodedExit decodes one hex-encoded exit, writing the error response
// itself. A non-nil error means a response has already been sent.
func (h *ExitHandler) decodeEncodedExit(c *gin.Context, encodedExit string) (business.Exit, error) {
	encoded, err := hexutil.Decode(encodedExit)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Encoded exit is not valid hex", err)
		return nil, err
	}

	exit, err := helpers.DecodeExit(encoded)
	if err != nil {
		if errors.Is(err, helpers.ErrMalformedEncoding) {
			sendError(c, http.StatusBadRequest, "Encoded exit is malformed", err)
		} else {
			sendError(c, http.StatusInternalServerError, "Failed to decode exit", err)
		}
		return nil, err
	}
	return exit, nil
}
