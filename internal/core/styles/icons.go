package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconFavorite    = "★"
	IconNotFavorite = "☆"
	IconArrowRight  = "→"
	IconCursor      = "›"
	IconChecked     = "[x]"
	IconUnchecked   = "[ ]"
)

// Notification icons
var (
	IconNotifyInfo    = "" //
	IconNotifyWarning = "" //
	IconNotifyError   = "" //
)

// Point type icons, keyed by point type name.
var PointTypeIcons = map[string]string{
	"taxi":        "\U000F0531", // 󰔱
	"bus":         "\U000F00E7", // 󰃧
	"train":       "\U000F052C", // 󰔬
	"ship":        "\U000F0A50", // 󰩐
	"drive":       "\U000F010B", // 󰄋
	"flight":      "\U000F001D", // 󰀝
	"check-in":    "\U000F02DC", // 󰋜
	"sightseeing": "\U000F0100", // 󰄀
	"restaurant":  "\U000F025A", // 󰉚
}

// PointTypeIcon returns the icon for a point type, or a bullet for unknown types.
func PointTypeIcon(t string) string {
	if icon, ok := PointTypeIcons[t]; ok {
		return icon
	}
	return "•"
}
