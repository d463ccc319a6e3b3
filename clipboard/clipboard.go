package clipboard

import "github.com/andareed/siftly-histview/logging"

// CopyText tries the platform clipboard first and falls back to OSC52 so
// copies still work over SSH or inside terminals without a system
// clipboard bridge.
func CopyText(text string) error {
	if err := Copy(text); err == nil {
		logging.Debugf("Clipboard: copied via platform clipboard")
		return nil
	} else {
		logging.Debugf("Clipboard: platform copy failed (%v), trying OSC52", err)
	}
	return copyOSC52(text)
}
