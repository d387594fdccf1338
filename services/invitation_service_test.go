package services

import (
	"testing"
	"time"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInvitation(t *testing.T) {
	setupTestDB(t)
	profile, _ := seedNutritionist(t, "ana@example.com")

	invitation, err := CreateInvitation(profile.ID, models.RolePatient, "", 0)
	require.NoError(t, err)
	assert.Len(t, invitation.Code, 32)
	assert.Equal(t, models.RolePatient, invitation.Role)
	assert.WithinDuration(t, time.Now().Add(DefaultInvitationTTL), invitation.ExpiresAt, time.Minute)
}

func TestCreateInvitationRejectsAdminRole(t *testing.T) {
	setupTestDB(t)
	profile, _ := seedNutritionist(t, "ana@example.com")

	_, err := CreateInvitation(profile.ID, models.RoleAdmin, "", 0)
	assert.Error(t, err)
}

func TestVerifyInvitationValidCode(t *testing.T) {
	setupTestDB(t)
	invitation := seedInvitation(t, models.RolePatient, time.Now().Add(time.Hour))

	found, err := VerifyInvitation(invitation.Code)
	require.NoError(t, err)
	assert.Equal(t, invitation.ID, found.ID)
}

// Not-found, already-used and expired must all surface the exact same
// error, leaking nothing about which condition failed.
func TestVerifyInvitationIndistinguishableFailures(t *testing.T) {
	setupTestDB(t)

	// unknown code
	_, errUnknown := VerifyInvitation("no-such-code")

	// already used
	used := seedInvitation(t, models.RolePatient, time.Now().Add(time.Hour))
	now := time.Now()
	userID := uint(1)
	used.UsedAt = &now
	used.UsedBy = &userID
	require.NoError(t, config.DB.Save(used).Error)
	_, errUsed := VerifyInvitation(used.Code)

	// expired
	expired := seedInvitation(t, models.RolePatient, time.Now().Add(-time.Hour))
	_, errExpired := VerifyInvitation(expired.Code)

	assert.ErrorIs(t, errUnknown, ErrInvitationInvalid)
	assert.ErrorIs(t, errUsed, ErrInvitationInvalid)
	assert.ErrorIs(t, errExpired, ErrInvitationInvalid)
	assert.Equal(t, errUnknown.Error(), errUsed.Error())
	assert.Equal(t, errUsed.Error(), errExpired.Error())
}

// Two signups racing for the same code: exactly one wins, and the
// invitation records only the winner.
func TestInvitationSingleUse(t *testing.T) {
	setupTestDB(t)
	invitation := seedInvitation(t, models.RoleNutritionist, time.Now().Add(time.Hour))

	winner, errFirst := RegisterUser("first@example.com", "secret1", "First", invitation.Code)
	require.NoError(t, errFirst)

	_, errSecond := RegisterUser("second@example.com", "secret2", "Second", invitation.Code)
	assert.ErrorIs(t, errSecond, ErrInvitationInvalid)

	var stored models.Invitation
	require.NoError(t, config.DB.First(&stored, invitation.ID).Error)
	require.NotNil(t, stored.UsedAt)
	require.NotNil(t, stored.UsedBy)
	assert.Equal(t, winner.ID, *stored.UsedBy)

	// the losing signup rolled back entirely
	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", "second@example.com").Count(&count)
	assert.EqualValues(t, 0, count)
}

// Full lifecycle: a nutritionist invites a patient, the invitee signs
// up with the code, and ends the flow with the invited role.
func TestInvitationSignupEndToEnd(t *testing.T) {
	setupTestDB(t)
	profile, _ := seedNutritionist(t, "ana@example.com")

	invitation, err := CreateInvitation(profile.ID, models.RolePatient, "", 0)
	require.NoError(t, err)

	verified, err := VerifyInvitation(invitation.Code)
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, verified.Role)

	user, err := RegisterUser("convidado@example.com", "secret1", "Convidado", invitation.Code)
	require.NoError(t, err)

	resolved, err := ResolveProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, resolved.Role)

	var stored models.Invitation
	require.NoError(t, config.DB.First(&stored, invitation.ID).Error)
	require.NotNil(t, stored.UsedAt)
	assert.Equal(t, user.ID, *stored.UsedBy)

	// and the code is spent
	_, err = VerifyInvitation(invitation.Code)
	assert.ErrorIs(t, err, ErrInvitationInvalid)
}

func TestRedeemExpiredInvitationFails(t *testing.T) {
	setupTestDB(t)
	invitation := seedInvitation(t, models.RolePatient, time.Now().Add(-time.Minute))

	_, err := RegisterUser("late@example.com", "secret1", "Late", invitation.Code)
	assert.ErrorIs(t, err, ErrInvitationInvalid)

	var stored models.Invitation
	require.NoError(t, config.DB.First(&stored, invitation.ID).Error)
	assert.Nil(t, stored.UsedAt)
}

func TestPurgeExpiredInvitations(t *testing.T) {
	setupTestDB(t)

	seedInvitation(t, models.RolePatient, time.Now().Add(-time.Hour)) // dead
	alive := seedInvitation(t, models.RolePatient, time.Now().Add(time.Hour))

	// used invitations stay as an audit trail even past expiry
	usedExpired := seedInvitation(t, models.RolePatient, time.Now().Add(-time.Hour))
	now := time.Now()
	usedExpired.UsedAt = &now
	require.NoError(t, config.DB.Save(usedExpired).Error)

	purged, err := PurgeExpiredInvitations()
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	var remaining int64
	config.DB.Model(&models.Invitation{}).Count(&remaining)
	assert.EqualValues(t, 2, remaining)

	_, err = VerifyInvitation(alive.Code)
	assert.NoError(t, err)
}
