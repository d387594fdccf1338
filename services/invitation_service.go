package services

import (
	"errors"
	"time"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"
	"github.com/vReis72/nutri-vita-plan-sub000/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInvitationInvalid is deliberately the only failure ever reported
// for a bad code. Not-found, already-used and expired must be
// indistinguishable to the caller.
var ErrInvitationInvalid = errors.New("invalid or expired invitation")

const DefaultInvitationTTL = 7 * 24 * time.Hour

func CreateInvitation(createdBy uint, role, email string, ttl time.Duration) (*models.Invitation, error) {
	// admin accounts are provisioned by hand, never by invitation
	if !models.ValidRole(role) || role == models.RoleAdmin {
		return nil, errors.New("invitation role must be patient or nutritionist")
	}
	if ttl <= 0 {
		ttl = DefaultInvitationTTL
	}

	invitation := models.Invitation{
		Code:      utils.GenerateInvitationCode(),
		Email:     email,
		Role:      role,
		CreatedBy: &createdBy,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := config.DB.Create(&invitation).Error; err != nil {
		return nil, err
	}

	if email != "" {
		if err := utils.SendInvitationEmail(email, invitation.Code, role, invitation.ExpiresAt); err != nil {
			config.Logger.Warn("invitation email not sent",
				zap.Uint("invitation_id", invitation.ID), zap.Error(err))
		}
	}

	return &invitation, nil
}

// VerifyInvitation answers whether a code is currently redeemable.
func VerifyInvitation(code string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := config.DB.
		Where("code = ? AND used_at IS NULL AND expires_at > ?", code, time.Now()).
		First(&invitation).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			config.Logger.Warn("invitation lookup failed", zap.Error(err))
		}
		return nil, ErrInvitationInvalid
	}
	return &invitation, nil
}

// redeemInvitation marks a code used inside the caller's transaction.
// The conditional update is the single-use enforcement: of two
// concurrent redemptions exactly one sees RowsAffected == 1.
func redeemInvitation(tx *gorm.DB, code string, userID uint) (*models.Invitation, error) {
	var invitation models.Invitation
	if err := tx.Where("code = ?", code).First(&invitation).Error; err != nil {
		return nil, ErrInvitationInvalid
	}

	now := time.Now()
	result := tx.Model(&models.Invitation{}).
		Where("code = ? AND used_at IS NULL AND expires_at > ?", code, now).
		Updates(map[string]interface{}{"used_at": now, "used_by": userID})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected != 1 {
		return nil, ErrInvitationInvalid
	}

	invitation.UsedAt = &now
	invitation.UsedBy = &userID
	return &invitation, nil
}

func ListInvitations(createdBy uint) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := config.DB.
		Where("created_by = ?", createdBy).
		Order("created_at DESC").
		Find(&invitations).Error
	return invitations, err
}

// PurgeExpiredInvitations removes dead codes that were never redeemed.
// Used invitations are kept as an audit trail of who joined through whom.
func PurgeExpiredInvitations() (int64, error) {
	result := config.DB.
		Where("expires_at < ? AND used_at IS NULL", time.Now()).
		Delete(&models.Invitation{})
	return result.RowsAffected, result.Error
}
