package audio

import (
	"encoding/json"
	"fmt"
)

// Overlay document types, consumed by UI frontends to render the
// block's parameter editors.
type OverlayOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type OverlayParam struct {
	Key          string          `json:"key"`
	WidgetType   string          `json:"widgetType"`
	WidgetKwargs map[string]any  `json:"widgetKwargs"`
	Options      []OverlayOption `json:"options"`
}

type OverlayDoc struct {
	Params []OverlayParam `json:"params"`
}

// Overlay describes the block's editable parameters: an editable
// combo box for deviceName with a "Default Device" entry followed by
// one entry per catalog device. Option values are quoted device name
// strings. The document is generated fresh from the current catalog
// on every call.
func (b *Block) Overlay() (string, error) {
	count, err := b.host.DeviceCount()
	if err != nil {
		return "", fmt.Errorf("overlay: %w", err)
	}

	options := []OverlayOption{{Name: "Default Device", Value: `""`}}
	for i := 0; i < count; i++ {
		info, err := b.host.DeviceInfo(i)
		if err != nil {
			return "", fmt.Errorf("overlay: %w", err)
		}
		options = append(options, OverlayOption{
			Name:  info.Name,
			Value: `"` + info.Name + `"`,
		})
	}

	doc := OverlayDoc{
		Params: []OverlayParam{{
			Key:          "deviceName",
			WidgetType:   "ComboBox",
			WidgetKwargs: map[string]any{"editable": true},
			Options:      options,
		}},
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("overlay: %w", err)
	}
	return string(out), nil
}
