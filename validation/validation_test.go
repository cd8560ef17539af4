package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campus-market/dto"
)

func TestRegisterChainsCollectAllFailures(t *testing.T) {
	form := dto.RegisterForm{Username: "", Password: "short", ConfirmPassword: "other"}
	errs := Validate("en", RegisterChains(form)...)

	// Empty username fails both required and min length; nothing short-circuits.
	fields := map[string]int{}
	for _, e := range errs {
		fields[e.Field]++
	}
	assert.Equal(t, 2, fields["username"])
	assert.Equal(t, 1, fields["password"])
	assert.Equal(t, 1, fields["confirmPassword"])
}

func TestMessagesAreLocalized(t *testing.T) {
	form := dto.LoginForm{Username: "", Password: "secret123"}

	en := Validate("en", LoginChains(form)...)
	assert.Equal(t, "Username is required", en[0].Message)

	zh := Validate("zh", LoginChains(form)...)
	assert.Equal(t, "用户名不能为空", zh[0].Message)
}

func TestItemChains(t *testing.T) {
	valid := dto.ItemForm{Title: "Bike", Category: "书籍", Price: "10", Description: ""}
	assert.Nil(t, Validate("en", ItemChains(valid)...))

	tests := []struct {
		name  string
		form  dto.ItemForm
		field string
	}{
		{"missing title", dto.ItemForm{Category: "书籍", Price: "10"}, "title"},
		{"unknown category", dto.ItemForm{Title: "Bike", Category: "nope", Price: "10"}, "category"},
		{"negative price", dto.ItemForm{Title: "Bike", Category: "书籍", Price: "-1"}, "price"},
		{"unparseable price", dto.ItemForm{Title: "Bike", Category: "书籍", Price: "abc"}, "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate("en", ItemChains(tt.form)...)
			assert.NotEmpty(t, errs)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestOptionalDescriptionSkippedWhenBlank(t *testing.T) {
	form := dto.ItemForm{Title: "Bike", Category: "书籍", Price: "0", Description: "   "}
	assert.Nil(t, Validate("en", ItemChains(form)...))
}

func TestConfirmPasswordMatch(t *testing.T) {
	form := dto.RegisterForm{Username: "alice", Password: "secret123", ConfirmPassword: "secret123"}
	assert.Nil(t, Validate("en", RegisterChains(form)...))
}
