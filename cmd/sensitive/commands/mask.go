package commands

import (
	"fmt"

	"github.com/zoobzio/sensitive"
)

// RunMask prints the display form of one value. maskType is ssn, account,
// data, email or phone; visible applies to data only.
func RunMask(io IOTuple, maskType string, visible int, value string) error {
	input, err := readValue(value, io.Reader)
	if err != nil {
		return err
	}

	mt := sensitive.MaskType(maskType)
	if !mt.Valid() {
		return fmt.Errorf("unknown mask type %q (want one of %v)", maskType, sensitive.MaskTypes())
	}

	var masked string
	switch mt {
	case sensitive.MaskTypeSSN:
		masked = sensitive.MaskSSN(input)
	case sensitive.MaskTypeAccount:
		masked = sensitive.MaskAccountNumber(input)
	case sensitive.MaskTypeData:
		masked = sensitive.MaskSensitiveData(input, visible)
	case sensitive.MaskTypeEmail:
		masked = sensitive.EmailMasker().Mask(input)
	case sensitive.MaskTypePhone:
		masked = sensitive.PhoneMasker().Mask(input)
	}

	_, _ = fmt.Fprintln(io.Writer, masked)
	return nil
}
