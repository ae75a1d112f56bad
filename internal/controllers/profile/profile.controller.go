package profileController

import (
	"context"
	"errors"

	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
	"hridayavayu/internal/repositories"
	"hridayavayu/internal/services"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type ProfileController struct {
	userRepo           repositories.UserRepository
	transactionService *services.TransactionService
	log                logger.Logger
}

func New(
	userRepo repositories.UserRepository,
	transactionService *services.TransactionService,
) *ProfileController {
	return &ProfileController{
		userRepo:           userRepo,
		transactionService: transactionService,
		log:                logger.New("ProfileController"),
	}
}

// SaveProfile creates the user, or updates the existing record when the
// mobile number is already registered. Either way the caller gets back the
// user id that correlates all later requests.
func (pc *ProfileController) SaveProfile(ctx context.Context, request *SaveProfileRequest) (*User, error) {
	log := pc.log.Function("SaveProfile")

	if !ValidGender(request.Gender) {
		return nil, log.Error("invalid gender", "gender", request.Gender)
	}

	contacts := make([]EmergencyContact, 0, len(request.EmergencyContacts))
	for _, contact := range request.EmergencyContacts {
		contacts = append(contacts, EmergencyContact{
			Name:  contact.Name,
			Phone: contact.Phone,
		})
	}

	var saved *User
	err := pc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		existing, err := pc.userRepo.GetByMobile(txCtx, request.Mobile)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user := &User{
				Name:              request.Name,
				Age:               request.Age,
				Gender:            request.Gender,
				Mobile:            request.Mobile,
				MedicalHistory:    request.MedicalHistory,
				EmergencyContacts: contacts,
			}
			if err := pc.userRepo.Create(txCtx, user); err != nil {
				return err
			}
			saved = user
			return nil
		case err != nil:
			return log.Err("failed to look up user by mobile", err, "mobile", request.Mobile)
		}

		existing.Name = request.Name
		existing.Age = request.Age
		existing.Gender = request.Gender
		existing.MedicalHistory = request.MedicalHistory
		for i := range contacts {
			contacts[i].UserID = existing.ID
		}
		existing.EmergencyContacts = contacts
		if err := pc.userRepo.Update(txCtx, existing); err != nil {
			return err
		}
		saved = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (pc *ProfileController) GetUser(ctx context.Context, id string) (*User, error) {
	user, err := pc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
