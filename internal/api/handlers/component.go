package handlers

import (
	"net/http"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComponentHandler handles HTTP requests for planning components
type ComponentHandler struct {
	componentService *service.ComponentService
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService *service.ComponentService) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
	}
}

// CreateComponent creates a new planning component
// @Summary Create a new planning component
// @Description Create a component with its responsible persons, required headcount and knowledge-transfer window
// @Tags components
// @Accept json
// @Produce json
// @Param component body service.ComponentRequest true "Component data"
// @Success 201 {object} service.ComponentResponse "Successfully created component"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Component name already exists"
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	var req service.ComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, err := h.componentService.CreateComponent(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, component)
}

// GetComponent retrieves a component by ID
// @Summary Get component by ID
// @Description Get a specific planning component
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Success 200 {object} service.ComponentResponse "Successfully retrieved component"
// @Failure 400 {object} map[string]interface{} "Invalid component ID"
// @Failure 404 {object} map[string]interface{} "Component not found"
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}

	component, err := h.componentService.GetComponentByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// ListComponents retrieves all planning components
// @Summary List planning components
// @Description Get all planning components
// @Tags components
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved components list"
// @Router /components [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
	components, err := h.componentService.ListComponents()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"components": components,
		"total":      len(components),
	})
}

// UpdateComponent replaces a component record
// @Summary Update a planning component
// @Description Replace a component record whole
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Param component body service.ComponentRequest true "Component data"
// @Success 200 {object} service.ComponentResponse "Successfully updated component"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Component not found"
// @Failure 409 {object} map[string]interface{} "Component name already exists"
// @Router /components/{id} [put]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}

	var req service.ComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, err := h.componentService.UpdateComponent(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// DeleteComponent deletes a component
// @Summary Delete a planning component
// @Description Delete a component record by ID
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Success 204 "Successfully deleted component"
// @Failure 400 {object} map[string]interface{} "Invalid component ID"
// @Failure 404 {object} map[string]interface{} "Component not found"
// @Router /components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}

	if err := h.componentService.DeleteComponent(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetComponentMembers resolves a component's member list through one signal
// @Summary List a component's members
// @Description Resolve the component's members through one membership signal. "declared" reads the members' free-text components field, "responsible" resolves the component's responsible names to member records.
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Param signal query string false "Membership signal: declared or responsible" default(declared)
// @Success 200 {object} service.ComponentMembersResponse "Successfully resolved members"
// @Failure 400 {object} map[string]interface{} "Invalid component ID or signal"
// @Failure 404 {object} map[string]interface{} "Component not found"
// @Router /components/{id}/members [get]
func (h *ComponentHandler) GetComponentMembers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid component ID"})
		return
	}

	signal := c.DefaultQuery("signal", service.SignalDeclared)
	members, err := h.componentService.GetMembers(id, signal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}
