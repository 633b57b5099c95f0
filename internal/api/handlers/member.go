package handlers

import (
	"net/http"
	"strconv"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for team members
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// CreateMember creates a new team member
// @Summary Create a new team member
// @Description Create a team member record. Dates use YYYY-MM-DD.
// @Description
// @Description Optional Fields with Defaults:
// @Description - knowledge_transfer_status: Defaults to 'Not Started'
// @Description - priority: Defaults to 'Medium'
// @Description - team: Defaults to 'Unassigned'
// @Description - employee_type: Defaults to 'Internal'
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.MemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully created member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req service.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.CreateMember(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember retrieves a member by ID
// @Summary Get member by ID
// @Description Get a specific team member with derived fields (age, tenure, days until exit)
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberResponse "Successfully retrieved member"
// @Failure 400 {object} map[string]interface{} "Invalid member ID"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	member, err := h.memberService.GetMemberByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers retrieves all members, optionally filtered
// @Summary List team members
// @Description Get all team members with derived fields, filterable by status, priority, role, team and days until exit
// @Tags members
// @Accept json
// @Produce json
// @Param status query string false "Knowledge transfer status filter"
// @Param priority query string false "Priority filter"
// @Param role query string false "Role filter"
// @Param team query string false "Team filter"
// @Param max_days_until_exit query int false "Only members departing within this many days"
// @Success 200 {object} map[string]interface{} "Successfully retrieved members list"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameters"
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	filter := &service.MemberFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Role:     c.Query("role"),
		Team:     c.Query("team"),
	}
	if raw := c.Query("max_days_until_exit"); raw != "" {
		maxDays, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_days_until_exit"})
			return
		}
		filter.MaxDaysUntilExit = &maxDays
	}

	members, err := h.memberService.ListMembers(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"total":   len(members),
	})
}

// UpdateMember replaces a member record
// @Summary Update a team member
// @Description Replace a member record whole. Partial updates are not supported; send the full record.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param member body service.MemberRequest true "Member data"
// @Success 200 {object} service.MemberResponse "Successfully updated member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var req service.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.UpdateMember(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember deletes a member
// @Summary Delete a team member
// @Description Delete a member record by ID
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 204 "Successfully deleted member"
// @Failure 400 {object} map[string]interface{} "Invalid member ID"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	if err := h.memberService.DeleteMember(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllMembers clears the member list
// @Summary Delete all team members
// @Description Clear the whole member list. Mirrors the board's reset action.
// @Tags members
// @Accept json
// @Produce json
// @Success 204 "Successfully cleared member list"
// @Router /members [delete]
func (h *MemberHandler) DeleteAllMembers(c *gin.Context) {
	if err := h.memberService.DeleteAllMembers(); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
