package validation

import (
	"campus-market/constants"
	"campus-market/dto"
)

// Rule sets for the two resource payloads. Both presentation surfaces run
// the same chains so their 422 semantics cannot drift.

func LoginChains(f dto.LoginForm) []Chain {
	return []Chain{
		{Field: "username", Value: f.Username, Rules: []Rule{
			Required("username_required"),
			MinLength(3, "username_min"),
			MaxLength(32, "username_max"),
		}},
		{Field: "password", Value: f.Password, Rules: []Rule{
			Required("password_required"),
			MinLength(6, "password_min"),
		}},
	}
}

func RegisterChains(f dto.RegisterForm) []Chain {
	chains := LoginChains(dto.LoginForm{Username: f.Username, Password: f.Password})
	return append(chains, Chain{Field: "confirmPassword", Value: f.ConfirmPassword, Rules: []Rule{
		EqualTo(f.Password, "confirm_mismatch"),
	}})
}

func ItemChains(f dto.ItemForm) []Chain {
	return []Chain{
		{Field: "title", Value: f.Title, Rules: []Rule{
			Required("title_required"),
			MaxLength(80, "title_max"),
		}},
		{Field: "category", Value: f.Category, Rules: []Rule{
			Required("category_required"),
			OneOf(constants.Categories, "category_invalid"),
		}},
		{Field: "price", Value: f.Price, Rules: []Rule{
			Required("price_required"),
			NonNegativeNumber("price_nonneg"),
		}},
		{Field: "description", Value: f.Description, Optional: true, Rules: []Rule{
			MaxLength(500, "description_max"),
		}},
	}
}
