package interaction

// Options configures the connection interaction. Every field is independently
// defaulted; options may be changed after construction and take effect on the
// next pointer event.
type Options struct {
	// ConnectionPointRadius is the visual/interaction radius of a handle.
	// The proximity snap threshold is twice this radius.
	ConnectionPointRadius float64 `yaml:"connectionPointRadius"`

	// ConnectionPointMargin is the visual offset of handles from the node
	// boundary. Hit-testing does not use it.
	ConnectionPointMargin float64 `yaml:"connectionPointMargin"`

	// VisualFeedback gates preview rendering only, never logic.
	VisualFeedback bool `yaml:"visualFeedback"`

	// SmartAttachment snaps to the nearest handle within the snap
	// threshold. When false, the pointer must be on the handle itself
	// (within ConnectionPointRadius).
	SmartAttachment bool `yaml:"smartAttachment"`

	// ConnectionValidation toggles the self-connection check on complete.
	ConnectionValidation bool `yaml:"connectionValidation"`
}

// DefaultOptions returns the standard interaction configuration.
func DefaultOptions() Options {
	return Options{
		ConnectionPointRadius: 6,
		ConnectionPointMargin: 10,
		VisualFeedback:        true,
		SmartAttachment:       true,
		ConnectionValidation:  true,
	}
}
