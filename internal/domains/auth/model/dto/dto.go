package dto

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"dinedesk/infras/api"
	"dinedesk/infras/jwt"
	"dinedesk/internal/domains/auth/model"
	"dinedesk/shared"
	"dinedesk/shared/session"
)

const tableTypesList = "tableTypes"

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInBody is the JSON the backend's sign in expects.
type SignInBody struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	UserRoleType int    `json:"userRoleType"`
}

type SignInRecord struct {
	Token       string        `json:"token"`
	UserDetails ProfileRecord `json:"userdetails"`
}

// TableTypeRecord keys sometimes arrive wrapped in quotes ("'id'"), and status and
// noOfTables arrive either typed or as text.
type TableTypeRecord map[string]json.RawMessage

func (r TableTypeRecord) field(names ...string) json.RawMessage {
	for _, name := range names {
		for key, value := range r {
			if strings.Trim(key, "'") == name {
				return value
			}
		}
	}

	return nil
}

func (r TableTypeRecord) ToModel() session.TableType {
	return session.TableType{
		ID:         shared.ParseString(r.field("id", "_id")),
		Name:       shared.ParseString(r.field("name")),
		Active:     shared.IsTrueString(shared.ParseString(r.field("status"))),
		NoOfTables: int(shared.ParseNumber(r.field("noOfTables"))),
	}
}

type ProfileRecord struct {
	ID                string            `json:"_id"`
	Username          string            `json:"username"`
	Email             string            `json:"email"`
	PhoneNumber       json.RawMessage   `json:"phoneNumber"`
	RestaurantName    string            `json:"restaurantName"`
	RestaurantAddress string            `json:"restaurantAddress"`
	NoOfTables        json.RawMessage   `json:"noOfTables"`
	TableTypes        []TableTypeRecord `json:"tableTypes"`
}

func (r ProfileRecord) ToModel() session.Profile {
	tableTypes := make([]session.TableType, 0, len(r.TableTypes))
	for _, record := range r.TableTypes {
		tableTypes = append(tableTypes, record.ToModel())
	}

	return session.Profile{
		ID:                r.ID,
		Username:          r.Username,
		Email:             r.Email,
		PhoneNumber:       shared.ParseString(r.PhoneNumber),
		RestaurantName:    r.RestaurantName,
		RestaurantAddress: r.RestaurantAddress,
		NoOfTables:        int(shared.ParseNumber(r.NoOfTables)),
		TableTypes:        tableTypes,
	}
}

type TableTypeOptionRecord struct {
	ID       string `json:"_id"`
	TypeName string `json:"typeName"`
}

func TableTypeOptionsToModels(records []TableTypeOptionRecord) []model.TableTypeOption {
	res := make([]model.TableTypeOption, 0, len(records))
	for _, record := range records {
		res = append(res, model.TableTypeOption{ID: record.ID, Name: record.TypeName})
	}

	return res
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int64           `json:"expires_in"`
	Profile      session.Profile `json:"profile"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type TableTypeForm struct {
	ID         string `json:"id"          validate:"required"`
	Name       string `json:"name"        validate:"notblank"`
	NoOfTables int    `json:"no_of_tables" validate:"gte=0,lte=500"`
	Active     bool   `json:"status"`
}

type ProfileForm struct {
	Username          string          `json:"username"           validate:"notblank,max=100"`
	Email             string          `json:"email"              validate:"required,email"`
	PhoneNumber       string          `json:"phone_number"       validate:"omitempty,phone"`
	RestaurantName    string          `json:"restaurant_name"    validate:"notblank,max=150"`
	RestaurantAddress string          `json:"restaurant_address" validate:"max=300"`
	TableTypes        []TableTypeForm `json:"table_types"        validate:"dive"`
}

func ProfileFormFromModel(p session.Profile) ProfileForm {
	tableTypes := make([]TableTypeForm, 0, len(p.TableTypes))
	for _, t := range p.TableTypes {
		tableTypes = append(tableTypes, TableTypeForm{ID: t.ID, Name: t.Name, NoOfTables: t.NoOfTables, Active: t.Active})
	}

	return ProfileForm{
		Username:          p.Username,
		Email:             p.Email,
		PhoneNumber:       p.PhoneNumber,
		RestaurantName:    p.RestaurantName,
		RestaurantAddress: p.RestaurantAddress,
		TableTypes:        tableTypes,
	}
}

// TotalTables is what the backend stores as noOfTables.
func (f ProfileForm) TotalTables() int {
	total := 0
	for _, t := range f.TableTypes {
		total += t.NoOfTables
	}

	return total
}

func (f ProfileForm) ToUpdateForm() url.Values {
	form := url.Values{
		"username":          {f.Username},
		"email":             {f.Email},
		"phoneNumber":       {f.PhoneNumber},
		"restaurantName":    {f.RestaurantName},
		"restaurantAddress": {f.RestaurantAddress},
		"noOfTables":        {strconv.Itoa(f.TotalTables())},
	}

	for i, t := range f.TableTypes {
		api.IndexedField(form, tableTypesList, i, "id", t.ID, false)
		api.IndexedField(form, tableTypesList, i, "name", t.Name, false)
		api.IndexedField(form, tableTypesList, i, "noOfTables", strconv.Itoa(t.NoOfTables), false)
		api.IndexedField(form, tableTypesList, i, "status", shared.BoolToString(t.Active), false)
	}

	return form
}

// Apply returns the profile as the backend stores it after the update.
func (f ProfileForm) Apply(p session.Profile) session.Profile {
	p.Username = f.Username
	p.Email = f.Email
	p.PhoneNumber = f.PhoneNumber
	p.RestaurantName = f.RestaurantName
	p.RestaurantAddress = f.RestaurantAddress
	p.NoOfTables = f.TotalTables()

	p.TableTypes = make([]session.TableType, 0, len(f.TableTypes))
	for _, t := range f.TableTypes {
		p.TableTypes = append(p.TableTypes, session.TableType{ID: t.ID, Name: t.Name, NoOfTables: t.NoOfTables, Active: t.Active})
	}

	return p
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func (c ChangePasswordRequest) ToForm() url.Values {
	return url.Values{
		"old_password": {c.CurrentPassword},
		"new_password": {c.NewPassword},
	}
}
