package value

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToDate(t *testing.T) {
	tests := []struct {
		in     string
		want   int32
		wantRC RC
	}{
		{in: "2024-02-29", want: 20240229, wantRC: RCSuccess},
		{in: "2000-02-29", want: 20000229, wantRC: RCSuccess},
		{in: "1900-01-01", want: 19000101, wantRC: RCSuccess},
		{in: "9999-12-31", want: 99991231, wantRC: RCSuccess},
		{in: "2023-04-30", want: 20230430, wantRC: RCSuccess},
		{in: "2023-02-29", wantRC: RCSchemaFieldTypeMismatch},
		{in: "1900-02-29", wantRC: RCSchemaFieldTypeMismatch},
		{in: "2024-13-01", wantRC: RCSchemaFieldTypeMismatch},
		{in: "2024-00-10", wantRC: RCSchemaFieldTypeMismatch},
		{in: "2024-01-00", wantRC: RCSchemaFieldTypeMismatch},
		{in: "2024-01-32", wantRC: RCSchemaFieldTypeMismatch},
		{in: "2023-04-31", wantRC: RCSchemaFieldTypeMismatch},
		{in: "1899-12-31", wantRC: RCSchemaFieldTypeMismatch},
		{in: "2024-1-01", wantRC: RCSchemaFieldTypeMismatch},
		{in: "2024/01/01", wantRC: RCSchemaFieldTypeMismatch},
		{in: "2024-01-01 ", wantRC: RCSchemaFieldTypeMismatch},
		{in: "20a4-01-01", wantRC: RCSchemaFieldTypeMismatch},
		{in: "", wantRC: RCSchemaFieldTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := NewString(tt.in, 0)
			err := v.ConvertTo(AttrDates)
			assert.Equal(t, tt.wantRC, RCOf(err))
			if tt.wantRC != RCSuccess {
				assert.Equal(t, NewString(tt.in, 0), v)
				return
			}
			assert.Equal(t, AttrDates, v.AttrType())
			assert.Equal(t, tt.want, v.AsInt())
			assert.Equal(t, tt.want, v.Datum().(Date).Packed())
		})
	}
}

func TestConvertToDateEveryDay(t *testing.T) {
	daysIn := func(year, month int) int {
		switch month {
		case 2:
			if isLeapYear(year) {
				return 29
			}
			return 28
		case 4, 6, 9, 11:
			return 30
		}
		return 31
	}
	for _, year := range []int{1900, 1996, 2000, 2023, 2024, 2100, 9999} {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= 31; day++ {
				in := strings.Join([]string{pad(year, 4), pad(month, 2), pad(day, 2)}, "-")
				out, err := NewString(in, 0).TryConvert(AttrDates)
				if day > daysIn(year, month) {
					assert.Error(t, err, in)
					continue
				}
				require.NoError(t, err, in)
				assert.Equal(t, int32(year*10000+month*100+day), out.AsInt(), in)
			}
		}
	}
}

func pad(n, width int) string {
	s := NewInt(int32(n)).String()
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func TestConvertToText(t *testing.T) {
	long := strings.Repeat("x", MaxTextLength)

	v := NewString(long, 0)
	require.NoError(t, v.ConvertTo(AttrTexts))
	assert.Equal(t, AttrTexts, v.AttrType())
	assert.Equal(t, long, v.String())
	assert.Equal(t, MaxTextLength, v.Length())

	tooLong := NewString(long+"x", 0)
	err := tooLong.ConvertTo(AttrTexts)
	assert.Equal(t, RCSchemaFieldTypeMismatch, RCOf(err))
	assert.Equal(t, AttrChars, tooLong.AttrType())
	assert.Equal(t, MaxTextLength+1, tooLong.Length())
}

func TestConvertToTextCopiesBuffer(t *testing.T) {
	chars := NewString("abc", 0)
	texts, err := chars.TryConvert(AttrTexts)
	require.NoError(t, err)

	texts.RawBytes()[0] = 'X'
	assert.Equal(t, "Xbc", texts.String())
	assert.Equal(t, "abc", chars.String())

	chars.RawBytes()[1] = 'Y'
	assert.Equal(t, "Xbc", texts.String())
}

func TestConvertNoop(t *testing.T) {
	values := []Value{
		NewInt(1),
		NewFloat(1),
		NewBoolean(false),
		NewString("2024-01-01", 0),
		mustDate(t, 2024, 1, 1),
	}
	for _, v := range values {
		out, err := v.TryConvert(v.AttrType())
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}

	for _, target := range AllAttrTypes {
		v := NewNull()
		require.NoError(t, v.ConvertTo(target))
		assert.True(t, v.IsNull())
	}
}

func TestConvertNotImplemented(t *testing.T) {
	for _, target := range []AttrType{AttrInts, AttrFloats, AttrBooleans, AttrNull, AttrChars, AttrUndefined} {
		v := NewString("1", 0)
		if target == AttrChars {
			v = NewInt(1)
		}
		err := v.ConvertTo(target)
		assert.Equal(t, RCUnimplemented, RCOf(err), target.String())
	}
}

func TestConvertRequiresChars(t *testing.T) {
	texts, err := NewString("2024-01-01", 0).TryConvert(AttrTexts)
	require.NoError(t, err)

	for _, v := range []Value{NewInt(20240101), NewFloat(1), NewBoolean(true), texts} {
		_, err := v.TryConvert(AttrDates)
		assert.Equal(t, RCSchemaFieldTypeMismatch, RCOf(err))
	}

	date := mustDate(t, 2024, 1, 1)
	err = date.ConvertTo(AttrTexts)
	assert.Equal(t, RCSchemaFieldTypeMismatch, RCOf(err))
	assert.Equal(t, AttrDates, date.AttrType())
}

func TestTryConvertLeavesSourceUntouched(t *testing.T) {
	v := NewString("2024-02-29", 0)
	out, err := v.TryConvert(AttrDates)
	require.NoError(t, err)
	assert.Equal(t, AttrDates, out.AttrType())
	assert.Equal(t, AttrChars, v.AttrType())
	assert.Equal(t, "2024-2-29", out.String())
}

func TestMakeDate(t *testing.T) {
	d, err := MakeDate(2024, 2, 9)
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 2, d.Month())
	assert.Equal(t, 9, d.Day())

	_, err = MakeDate(2023, 2, 29)
	assert.Equal(t, RCSchemaFieldTypeMismatch, RCOf(err))

	_, err = NewDate(10000, 1, 1)
	assert.Error(t, err)
}

func TestRCString(t *testing.T) {
	assert.Equal(t, "SUCCESS", RCSuccess.String())
	assert.Equal(t, "SCHEMA_FIELD_TYPE_MISMATCH", RCSchemaFieldTypeMismatch.String())
	assert.Equal(t, "UNIMPLEMENTED", RCUnimplemented.String())
	assert.Equal(t, RCSuccess, RCOf(nil))
}
