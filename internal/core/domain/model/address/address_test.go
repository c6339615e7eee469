package address_test

import (
	"testing"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPhone(t *testing.T) kernel.PhoneNumber {
	t.Helper()
	phone, err := kernel.NewPhoneNumber("+7 926 123-45-67")
	require.NoError(t, err)
	return phone
}

func validCoordinates(t *testing.T) kernel.Coordinates {
	t.Helper()
	coords, err := kernel.NewCoordinates(55.7558, 37.6173)
	require.NoError(t, err)
	return coords
}

func TestTypeFromString(t *testing.T) {
	t.Run("should parse pickup", func(t *testing.T) {
		addrType, err := address.TypeFromString("pickup")
		require.NoError(t, err)
		assert.Equal(t, address.Pickup, addrType)
		assert.False(t, addrType.IsDelivery())
	})

	t.Run("should parse delivery", func(t *testing.T) {
		addrType, err := address.TypeFromString("delivery")
		require.NoError(t, err)
		assert.Equal(t, address.Delivery, addrType)
		assert.True(t, addrType.IsDelivery())
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		_, err := address.TypeFromString("warehouse")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "type is invalid")
	})
}

func TestNewAddress(t *testing.T) {
	id := kernel.NewUUID()
	clientID := kernel.NewUUID()
	transportationID := kernel.NewUUID()

	t.Run("should create valid address with all valid parameters", func(t *testing.T) {
		a, err := address.NewAddress(
			id, clientID, transportationID, address.Pickup,
			"Warehouse", "Ivan Petrov", validPhone(t), 1, 1,
			"Tverskaya st. 1", "floor 3", "", "call on arrival",
			validCoordinates(t),
		)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, address.Pickup, a.Type())
		assert.Equal(t, "Warehouse", a.Alias())
		assert.Equal(t, "Ivan Petrov", a.Contact())
		assert.Equal(t, 1, a.CityID())
		assert.Equal(t, 1, a.CountryID())
		assert.Equal(t, "Tverskaya st. 1", a.AddressLine1())
		assert.Equal(t, "floor 3", a.AddressLine2())
		assert.Equal(t, "call on arrival", a.Comment())
		assert.InDelta(t, 55.7558, a.Coordinates().Latitude(), 1e-9)
		assert.Nil(t, a.DeletedAt())
	})

	t.Run("should fail with empty alias", func(t *testing.T) {
		a, err := address.NewAddress(
			id, clientID, transportationID, address.Pickup,
			"", "Ivan Petrov", validPhone(t), 1, 1,
			"Tverskaya st. 1", "", "", "",
			validCoordinates(t),
		)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unresolved city", func(t *testing.T) {
		a, err := address.NewAddress(
			id, clientID, transportationID, address.Pickup,
			"Warehouse", "Ivan Petrov", validPhone(t), 0, 1,
			"Tverskaya st. 1", "", "", "",
			validCoordinates(t),
		)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should fail with unconstructed phone", func(t *testing.T) {
		var invalidPhone kernel.PhoneNumber

		a, err := address.NewAddress(
			id, clientID, transportationID, address.Pickup,
			"Warehouse", "Ivan Petrov", invalidPhone, 1, 1,
			"Tverskaya st. 1", "", "", "",
			validCoordinates(t),
		)

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should fail without coordinates", func(t *testing.T) {
		var missing kernel.Coordinates

		a, err := address.NewAddress(
			id, clientID, transportationID, address.Delivery,
			"Warehouse", "Ivan Petrov", validPhone(t), 1, 1,
			"Tverskaya st. 1", "", "", "",
			missing,
		)

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should fail with invalid type", func(t *testing.T) {
		a, err := address.NewAddress(
			id, clientID, transportationID, address.UnknownType,
			"Warehouse", "Ivan Petrov", validPhone(t), 1, 1,
			"Tverskaya st. 1", "", "", "",
			validCoordinates(t),
		)

		require.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestAddress_Update(t *testing.T) {
	a, err := address.NewAddress(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), address.Pickup,
		"Warehouse", "Ivan Petrov", validPhone(t), 1, 1,
		"Tverskaya st. 1", "", "", "",
		validCoordinates(t),
	)
	require.NoError(t, err)

	t.Run("should update editable attributes", func(t *testing.T) {
		newCoords, err := kernel.NewCoordinates(59.9311, 30.3609)
		require.NoError(t, err)

		err = a.Update(
			address.Delivery, "Office", "Anna Sidorova", validPhone(t),
			2, 1, "Nevsky pr. 10", "office 5", "", "ring twice", newCoords,
		)

		require.NoError(t, err)
		assert.Equal(t, address.Delivery, a.Type())
		assert.Equal(t, "Office", a.Alias())
		assert.Equal(t, 2, a.CityID())
		assert.Equal(t, "office 5", a.AddressLine2())
		assert.InDelta(t, 59.9311, a.Coordinates().Latitude(), 1e-9)
	})

	t.Run("should reject invalid update without partial application", func(t *testing.T) {
		before := a.Alias()

		err := a.Update(
			a.Type(), "", a.Contact(), a.Phone(),
			a.CityID(), a.CountryID(), a.AddressLine1(), "", "", "",
			a.Coordinates(),
		)

		require.Error(t, err)
		assert.Equal(t, before, a.Alias())
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("should fail validation for nil address", func(t *testing.T) {
		var a *address.Address

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, address.ErrAddressIsNotConstructed, err)
	})
}

func TestCoordinates(t *testing.T) {
	t.Run("should create valid coordinates", func(t *testing.T) {
		coords, err := kernel.NewCoordinates(55.7558, 37.6173)
		require.NoError(t, err)
		assert.InDelta(t, 37.6173, coords.Longitude(), 1e-9)
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(91, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(0, -181)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
