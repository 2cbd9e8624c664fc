package mechanic

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopfloor-inc/shopfloor/internal/application/mechanic/dto"
	"github.com/shopfloor-inc/shopfloor/internal/application/mechanic/usecases"
	"github.com/shopfloor-inc/shopfloor/internal/shared/errors"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
	"github.com/shopfloor-inc/shopfloor/internal/shared/utils"
)

type Handler struct {
	createMechanicUC usecases.CreateMechanicExecutor
	getMechanicUC    usecases.GetMechanicExecutor
	listMechanicsUC  usecases.ListMechanicsExecutor
	updateMechanicUC usecases.UpdateMechanicExecutor
	deleteMechanicUC usecases.DeleteMechanicExecutor
	logger           logger.Interface
}

func NewHandler(
	createMechanicUC usecases.CreateMechanicExecutor,
	getMechanicUC usecases.GetMechanicExecutor,
	listMechanicsUC usecases.ListMechanicsExecutor,
	updateMechanicUC usecases.UpdateMechanicExecutor,
	deleteMechanicUC usecases.DeleteMechanicExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createMechanicUC: createMechanicUC,
		getMechanicUC:    getMechanicUC,
		listMechanicsUC:  listMechanicsUC,
		updateMechanicUC: updateMechanicUC,
		deleteMechanicUC: deleteMechanicUC,
		logger:           logger,
	}
}

// CreateMechanic handles POST /mechanics/
// @Summary Create mechanic
// @Tags Mechanics
// @Accept json
// @Produce json
// @Param request body MechanicRequest true "Mechanic"
// @Success 201 {object} dto.MechanicDTO
// @Failure 400 {object} map[string][]string
// @Failure 409 {object} utils.ErrorBody
// @Router /mechanics/ [post]
func (h *Handler) CreateMechanic(c *gin.Context) {
	var req MechanicRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create mechanic", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createMechanicUC.Execute(c.Request.Context(), req.ToCreateCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListMechanics handles GET /mechanics/
// @Summary List mechanics
// @Tags Mechanics
// @Produce json
// @Success 200 {array} dto.MechanicDTO
// @Router /mechanics/ [get]
func (h *Handler) ListMechanics(c *gin.Context) {
	result, err := h.listMechanicsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetMechanic handles GET /mechanics/:id
// @Summary Get mechanic
// @Tags Mechanics
// @Produce json
// @Param id path int true "Mechanic ID"
// @Success 200 {object} dto.MechanicDTO
// @Failure 404 {object} utils.ErrorBody
// @Router /mechanics/{id} [get]
func (h *Handler) GetMechanic(c *gin.Context) {
	mechanicID, ok := parseMechanicID(c)
	if !ok {
		return
	}

	result, err := h.getMechanicUC.Execute(c.Request.Context(), usecases.GetMechanicQuery{MechanicID: mechanicID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// UpdateMechanic handles PUT /mechanics/:id
// @Summary Update mechanic
// @Description Replaces name and email; both are required.
// @Tags Mechanics
// @Accept json
// @Produce json
// @Param id path int true "Mechanic ID"
// @Param request body MechanicRequest true "Mechanic"
// @Success 200 {object} dto.MechanicDTO
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /mechanics/{id} [put]
func (h *Handler) UpdateMechanic(c *gin.Context) {
	mechanicID, ok := parseMechanicID(c)
	if !ok {
		return
	}

	var req MechanicRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update mechanic", "mechanic_id", mechanicID, "error", err)
		if _, getErr := h.getMechanicUC.Execute(c.Request.Context(), usecases.GetMechanicQuery{MechanicID: mechanicID}); getErr != nil {
			utils.ErrorResponseWithError(c, getErr)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateMechanicUC.Execute(c.Request.Context(), req.ToUpdateCommand(mechanicID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteMechanic handles DELETE /mechanics/:id
// @Summary Delete mechanic
// @Tags Mechanics
// @Produce json
// @Param id path int true "Mechanic ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /mechanics/{id} [delete]
func (h *Handler) DeleteMechanic(c *gin.Context) {
	mechanicID, ok := parseMechanicID(c)
	if !ok {
		return
	}

	if err := h.deleteMechanicUC.Execute(c.Request.Context(), usecases.DeleteMechanicCommand{MechanicID: mechanicID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageSuccessResponse(c, fmt.Sprintf("Mechanic %d is deleted successfully.", mechanicID))
}

// parseMechanicID writes the not-found response itself when the path id is
// not a positive integer.
func parseMechanicID(c *gin.Context) (uint, bool) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(dto.MsgMechanicNotFound))
	}
	return id, ok
}
