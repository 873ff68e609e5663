package routes

import (
	"encoding/json"
	"strings"

	"golftrip-server/models"
	"golftrip-server/services"
	"golftrip-server/storage"
	"golftrip-server/utils"

	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type RegisterUserInput struct {
	FirstName string `json:"firstName" validate:"required,max=256"`
	LastName  string `json:"lastName" validate:"required,max=256"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=256"`
	Country   string `json:"country"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Register(ctx iris.Context) {
	var userInput RegisterUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var newUser models.User
	userExists, userExistsErr := getAndHandleUserExists(&newUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if userExists {
		utils.CreateEmailAlreadyRegistered(ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser = models.User{
		FirstName: userInput.FirstName,
		LastName:  userInput.LastName,
		Email:     strings.ToLower(userInput.Email),
		Password:  hashedPassword,
		Country:   userInput.Country,
	}

	storage.DB.Create(&newUser)

	utils.Audit(ctx, models.AuditUserRegister, "user", newUser.ID, nil, iris.Map{"email": newUser.Email}, "Consent")

	returnUser(newUser, ctx)
}

func Login(ctx iris.Context) {
	var userInput LoginUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existingUser models.User
	errorMsg := "Invalid email or password."
	userExists, userExistsErr := getAndHandleUserExists(&existingUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if !userExists {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(userInput.Password))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	storage.DB.Model(&existingUser).Update("last_login_at", gorm.Expr("NOW()"))

	utils.Audit(ctx, models.AuditUserLogin, "user", existingUser.ID, nil, nil, "Legitimate interest")

	returnUser(existingUser, ctx)
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

func ForgotPassword(ctx iris.Context) {
	var input ForgotPasswordInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	userExists, userExistsErr := getAndHandleUserExists(&user, input.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// Always answer OK so the endpoint cannot be used to enumerate accounts
	if userExists {
		token, tokenErr := utils.CreateForgotPasswordToken(user.ID, user.Email)
		if tokenErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		go services.NewNotificationService().SendPasswordResetEmail(&user, token)
	}

	ctx.JSON(iris.Map{"message": "If that email exists, a reset link has been sent."})
}

type ResetPasswordInput struct {
	Password string `json:"password" validate:"required,min=8,max=256"`
}

func ResetPassword(ctx iris.Context) {
	var input ResetPasswordInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	claims := jsonWT.Get(ctx).(*utils.ForgotPasswordToken)

	var user models.User
	if err := storage.DB.First(&user, claims.ID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(input.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	user.Password = hashedPassword
	if err := storage.DB.Save(&user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, models.AuditDataUpdate, "user", user.ID, nil, iris.Map{"field": "password"}, "Contract performance")

	ctx.JSON(iris.Map{"message": "Password updated."})
}

func GetUser(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var user models.User
	if err := storage.DB.Preload("Profile").First(&user, userID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&user)
}

type AlterSavedDestinationsInput struct {
	DestinationID int    `json:"destinationID" validate:"required"`
	Op            string `json:"op" validate:"required,oneof=add remove"`
}

// AlterUserSavedDestinations adds or removes a destination from the user's
// saved list.
func AlterUserSavedDestinations(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var req AlterSavedDestinationsInput
	if err := ctx.ReadJSON(&req); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var saved []int
	if user.SavedDestinations != nil {
		if err := json.Unmarshal(user.SavedDestinations, &saved); err != nil {
			saved = []int{}
		}
	}

	if req.Op == "add" {
		if !slices.Contains(saved, req.DestinationID) {
			saved = append(saved, req.DestinationID)
		}
	} else {
		kept := saved[:0]
		for _, id := range saved {
			if id != req.DestinationID {
				kept = append(kept, id)
			}
		}
		saved = kept
	}

	marshalled, marshalErr := json.Marshal(saved)
	if marshalErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	user.SavedDestinations = marshalled
	if err := storage.DB.Save(&user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"savedDestinations": saved})
}

// GetUserSavedDestinations returns the saved destinations as full records.
func GetUserSavedDestinations(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var saved []int
	if user.SavedDestinations != nil {
		json.Unmarshal(user.SavedDestinations, &saved)
	}

	destinations := []models.Destination{}
	if len(saved) > 0 {
		if err := storage.DB.Where("id IN ?", saved).Find(&destinations).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	ctx.JSON(destinations)
}

func getAndHandleUserExists(user *models.User, email string) (exists bool, err error) {
	userExistsQuery := storage.DB.Where("email = ?", strings.ToLower(email)).Limit(1).Find(&user)

	if userExistsQuery.Error != nil {
		return false, userExistsQuery.Error
	}

	return userExistsQuery.RowsAffected > 0, nil
}

func hashAndSaltPassword(password string) (hashedPassword string, err error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func returnUser(user models.User, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(user.ID)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"ID":                  user.ID,
		"firstName":           user.FirstName,
		"lastName":            user.LastName,
		"email":               user.Email,
		"phoneNumber":         user.PhoneNumber,
		"country":             user.Country,
		"savedDestinations":   user.SavedDestinations,
		"allowsNotifications": user.AllowsNotifications,
		"accessToken":         string(tokenPair.AccessToken),
		"refreshToken":        string(tokenPair.RefreshToken),
	})
}
