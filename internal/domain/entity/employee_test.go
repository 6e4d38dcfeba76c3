package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
)

func validAttrs() entity.Attributes {
	return entity.Attributes{
		Name:     "张三",
		Gender:   entity.GenderMale,
		Level:    1,
		Birthday: "1990-12-15",
		Role:     payroll.FixedSalary{Amount: decimal.NewFromInt(5000)},
	}
}

func TestParseGender(t *testing.T) {
	g, err := entity.ParseGender("女")
	require.NoError(t, err)
	assert.Equal(t, entity.GenderFemale, g)

	for _, in := range []string{"", "M", "male", " 男"} {
		_, err := entity.ParseGender(in)
		assert.ErrorIs(t, err, domain.ErrInvalidGender, "entrada %q", in)
	}
}

func TestValidBirthday(t *testing.T) {
	valid := []string{"1990-12-15", "1900-01-01", "2100-12-31", "2023-02-31"}
	for _, s := range valid {
		assert.True(t, entity.ValidBirthday(s), s)
	}
	invalid := []string{"", "1990-1-15", "1990/12/15", "1899-12-31", "2101-01-01", "1990-13-01", "1990-00-10", "1990-12-32", "1990-12-00", "abcd-ef-gh"}
	for _, s := range invalid {
		assert.False(t, entity.ValidBirthday(s), s)
	}
}

func TestNew_Validaciones(t *testing.T) {
	_, err := entity.New(validAttrs())
	require.NoError(t, err)

	a := validAttrs()
	a.Name = "  "
	_, err = entity.New(a)
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	a = validAttrs()
	a.Gender = "X"
	_, err = entity.New(a)
	assert.ErrorIs(t, err, domain.ErrInvalidGender)

	a = validAttrs()
	a.Birthday = "1990-12-99"
	_, err = entity.New(a)
	assert.ErrorIs(t, err, domain.ErrInvalidBirthday)

	a = validAttrs()
	a.Birthday = ""
	_, err = entity.New(a)
	assert.NoError(t, err, "cumpleaños vacío significa sin definir")

	for _, name := range []string{"Ana\n99,Fantasma,Manager,1,男,,9999.00,0,0", "Ana\rBo", "\nAna"} {
		a = validAttrs()
		a.Name = name
		_, err = entity.New(a)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%q", name)
	}

	a = validAttrs()
	a.Role = nil
	_, err = entity.New(a)
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestEmployee_PromoteYPago(t *testing.T) {
	e, err := entity.New(validAttrs())
	require.NoError(t, err)

	e.Promote(0)
	assert.Equal(t, 2, e.Level)
	e.Promote(3)
	assert.Equal(t, 5, e.Level)

	assert.Equal(t, payroll.TagManager, e.RoleTag())
	assert.True(t, e.MonthlyPay().Equal(decimal.NewFromInt(5000)))

	m, day, ok := e.BirthdayMonthDay()
	require.True(t, ok)
	assert.Equal(t, 12, m)
	assert.Equal(t, 15, day)
}
