package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// labelHandler serves the small lookup resources a transaction can point at:
// tags, payees and payment methods.
type labelHandler struct {
	tagService           portssvc.TagSvc
	payeeService         portssvc.PayeeSvc
	paymentMethodService portssvc.PaymentMethodSvc
}

func registerLabelRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &labelHandler{
		tagService:           services.Tag,
		payeeService:         services.Payee,
		paymentMethodService: services.PaymentMethod,
	}

	tags := rg.Group("/tags")
	{
		tags.GET("", h.listTags)
		tags.POST("", h.createTag)
		tags.GET("/:id", h.getTag)
		tags.PUT("/:id", h.updateTag)
		tags.DELETE("/:id", h.deleteTag)
	}

	payees := rg.Group("/payees")
	{
		payees.GET("", h.listPayees)
		payees.POST("", h.createPayee)
		payees.GET("/:id", h.getPayee)
		payees.PUT("/:id", h.updatePayee)
		payees.DELETE("/:id", h.deletePayee)
	}

	methods := rg.Group("/payment-methods")
	{
		methods.GET("", h.listPaymentMethods)
		methods.POST("", h.createPaymentMethod)
		methods.GET("/:id", h.getPaymentMethod)
		methods.PUT("/:id", h.updatePaymentMethod)
		methods.DELETE("/:id", h.deletePaymentMethod)
	}
}

// listTags godoc
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.ListTagsResponse}
// @Security BearerAuth
// @Router /tags [get]
func (h *labelHandler) listTags(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tags, err := h.tagService.ListTags(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListTagsResponse(tags)))
}

// getTag godoc
// @Summary Get a tag
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} dto.Envelope{data=dto.TagResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /tags/{id} [get]
func (h *labelHandler) getTag(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tag, err := h.tagService.GetTag(c.Request.Context(), tagID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTagResponse(tag)))
}

// createTag godoc
// @Summary Create a tag
// @Description Tag names are unique per user
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body dto.TagRequest true "Tag details"
// @Success 201 {object} dto.Envelope{data=dto.TagResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope "Tag name already used"
// @Security BearerAuth
// @Router /tags [post]
func (h *labelHandler) createTag(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.TagRequest
	if !bindJSON(c, &req) {
		return
	}
	tag, err := h.tagService.CreateTag(c.Request.Context(), req.ToDomain(userID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToTagResponse(tag)))
}

// updateTag godoc
// @Summary Update a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param tag body dto.TagRequest true "Tag details"
// @Success 200 {object} dto.Envelope{data=dto.TagResponse}
// @Failure 404 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Security BearerAuth
// @Router /tags/{id} [put]
func (h *labelHandler) updateTag(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.TagRequest
	if !bindJSON(c, &req) {
		return
	}
	tag, err := h.tagService.UpdateTag(c.Request.Context(), tagID, req.ToDomain(userID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTagResponse(tag)))
}

// deleteTag godoc
// @Summary Delete a tag
// @Tags tags
// @Param id path int true "Tag ID"
// @Success 204
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /tags/{id} [delete]
func (h *labelHandler) deleteTag(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.tagService.DeleteTag(c.Request.Context(), tagID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listPayees godoc
// @Summary List payees
// @Tags payees
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.ListPayeesResponse}
// @Security BearerAuth
// @Router /payees [get]
func (h *labelHandler) listPayees(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	payees, err := h.payeeService.ListPayees(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListPayeesResponse(payees)))
}

// getPayee godoc
// @Summary Get a payee
// @Tags payees
// @Produce json
// @Param id path int true "Payee ID"
// @Success 200 {object} dto.Envelope{data=dto.PayeeResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /payees/{id} [get]
func (h *labelHandler) getPayee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	payeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	payee, err := h.payeeService.GetPayee(c.Request.Context(), payeeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToPayeeResponse(payee)))
}

// createPayee godoc
// @Summary Create a payee
// @Tags payees
// @Accept json
// @Produce json
// @Param payee body dto.PayeeRequest true "Payee details"
// @Success 201 {object} dto.Envelope{data=dto.PayeeResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /payees [post]
func (h *labelHandler) createPayee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.PayeeRequest
	if !bindJSON(c, &req) {
		return
	}
	payee, err := h.payeeService.CreatePayee(c.Request.Context(), req.ToDomain(userID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToPayeeResponse(payee)))
}

// updatePayee godoc
// @Summary Update a payee
// @Tags payees
// @Accept json
// @Produce json
// @Param id path int true "Payee ID"
// @Param payee body dto.PayeeRequest true "Payee details"
// @Success 200 {object} dto.Envelope{data=dto.PayeeResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /payees/{id} [put]
func (h *labelHandler) updatePayee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	payeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.PayeeRequest
	if !bindJSON(c, &req) {
		return
	}
	payee, err := h.payeeService.UpdatePayee(c.Request.Context(), payeeID, req.ToDomain(userID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToPayeeResponse(payee)))
}

// deletePayee godoc
// @Summary Delete a payee
// @Tags payees
// @Param id path int true "Payee ID"
// @Success 204
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /payees/{id} [delete]
func (h *labelHandler) deletePayee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	payeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.payeeService.DeletePayee(c.Request.Context(), payeeID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listPaymentMethods godoc
// @Summary List payment methods
// @Description Lists the user's payment methods and the system ones
// @Tags payment-methods
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.ListPaymentMethodsResponse}
// @Security BearerAuth
// @Router /payment-methods [get]
func (h *labelHandler) listPaymentMethods(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	methods, err := h.paymentMethodService.ListPaymentMethods(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListPaymentMethodsResponse(methods)))
}

// getPaymentMethod godoc
// @Summary Get a payment method
// @Tags payment-methods
// @Produce json
// @Param id path int true "Payment method ID"
// @Success 200 {object} dto.Envelope{data=dto.PaymentMethodResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /payment-methods/{id} [get]
func (h *labelHandler) getPaymentMethod(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	methodID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	method, err := h.paymentMethodService.GetPaymentMethod(c.Request.Context(), methodID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToPaymentMethodResponse(method)))
}

// createPaymentMethod godoc
// @Summary Create a payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param method body dto.PaymentMethodRequest true "Payment method details"
// @Success 201 {object} dto.Envelope{data=dto.PaymentMethodResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /payment-methods [post]
func (h *labelHandler) createPaymentMethod(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.PaymentMethodRequest
	if !bindJSON(c, &req) {
		return
	}
	method, err := h.paymentMethodService.CreatePaymentMethod(c.Request.Context(), req.ToDomain(userID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToPaymentMethodResponse(method)))
}

// updatePaymentMethod godoc
// @Summary Update a payment method
// @Description System payment methods are read-only and reported as not found
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param id path int true "Payment method ID"
// @Param method body dto.PaymentMethodRequest true "Payment method details"
// @Success 200 {object} dto.Envelope{data=dto.PaymentMethodResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /payment-methods/{id} [put]
func (h *labelHandler) updatePaymentMethod(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	methodID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.PaymentMethodRequest
	if !bindJSON(c, &req) {
		return
	}
	method, err := h.paymentMethodService.UpdatePaymentMethod(c.Request.Context(), methodID, req.ToDomain(userID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToPaymentMethodResponse(method)))
}

// deletePaymentMethod godoc
// @Summary Delete a payment method
// @Tags payment-methods
// @Param id path int true "Payment method ID"
// @Success 204
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /payment-methods/{id} [delete]
func (h *labelHandler) deletePaymentMethod(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	methodID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.paymentMethodService.DeletePaymentMethod(c.Request.Context(), methodID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
