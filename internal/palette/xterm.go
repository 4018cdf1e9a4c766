// Package palette resolves lexical categories to terminal colors.
package palette

// xterm holds the 256-color xterm palette as #rrggbb strings.
var xterm = [256]string{
	"#000000", "#800000", "#008000", "#808000", "#000080", "#800080", // 0-5
	"#008080", "#c0c0c0", "#808080", "#ff0000", "#00ff00", "#ffff00", // 6-11
	"#0000ff", "#ff00ff", "#00ffff", "#ffffff", "#000000", "#00005f", // 12-17
	"#000087", "#0000af", "#0000d7", "#0000ff", "#005f00", "#005f5f", // 18-23
	"#005f87", "#005faf", "#005fd7", "#005fff", "#008700", "#00875f", // 24-29
	"#008787", "#0087af", "#0087d7", "#0087ff", "#00af00", "#00af5f", // 30-35
	"#00af87", "#00afaf", "#00afd7", "#00afff", "#00d700", "#00d75f", // 36-41
	"#00d787", "#00d7af", "#00d7d7", "#00d7ff", "#00ff00", "#00ff5f", // 42-47
	"#00ff87", "#00ffaf", "#00ffd7", "#00ffff", "#5f0000", "#5f005f", // 48-53
	"#5f0087", "#5f00af", "#5f00d7", "#5f00ff", "#5f5f00", "#5f5f5f", // 54-59
	"#5f5f87", "#5f5faf", "#5f5fd7", "#5f5fff", "#5f8700", "#5f875f", // 60-65
	"#5f8787", "#5f87af", "#5f87d7", "#5f87ff", "#5faf00", "#5faf5f", // 66-71
	"#5faf87", "#5fafaf", "#5fafd7", "#5fafff", "#5fd700", "#5fd75f", // 72-77
	"#5fd787", "#5fd7af", "#5fd7d7", "#5fd7ff", "#5fff00", "#5fff5f", // 78-83
	"#5fff87", "#5fffaf", "#5fffd7", "#5fffff", "#870000", "#87005f", // 84-89
	"#870087", "#8700af", "#8700d7", "#8700ff", "#875f00", "#875f5f", // 90-95
	"#875f87", "#875faf", "#875fd7", "#875fff", "#878700", "#87875f", // 96-101
	"#878787", "#8787af", "#8787d7", "#8787ff", "#87af00", "#87af5f", // 102-107
	"#87af87", "#87afaf", "#87afd7", "#87afff", "#87d700", "#87d75f", // 108-113
	"#87d787", "#87d7af", "#87d7d7", "#87d7ff", "#87ff00", "#87ff5f", // 114-119
	"#87ff87", "#87ffaf", "#87ffd7", "#87ffff", "#af0000", "#af005f", // 120-125
	"#af0087", "#af00af", "#af00d7", "#af00ff", "#af5f00", "#af5f5f", // 126-131
	"#af5f87", "#af5faf", "#af5fd7", "#af5fff", "#af8700", "#af875f", // 132-137
	"#af8787", "#af87af", "#af87d7", "#af87ff", "#afaf00", "#afaf5f", // 138-143
	"#afaf87", "#afafaf", "#afafd7", "#afafff", "#afd700", "#afd75f", // 144-149
	"#afd787", "#afd7af", "#afd7d7", "#afd7ff", "#afff00", "#afff5f", // 150-155
	"#afff87", "#afffaf", "#afffd7", "#afffff", "#d70000", "#d7005f", // 156-161
	"#d70087", "#d700af", "#d700d7", "#d700ff", "#d75f00", "#d75f5f", // 162-167
	"#d75f87", "#d75faf", "#d75fd7", "#d75fff", "#d78700", "#d7875f", // 168-173
	"#d78787", "#d787af", "#d787d7", "#d787ff", "#d7af00", "#d7af5f", // 174-179
	"#d7af87", "#d7afaf", "#d7afd7", "#d7afff", "#d7d700", "#d7d75f", // 180-185
	"#d7d787", "#d7d7af", "#d7d7d7", "#d7d7ff", "#d7ff00", "#d7ff5f", // 186-191
	"#d7ff87", "#d7ffaf", "#d7ffd7", "#d7ffff", "#ff0000", "#ff005f", // 192-197
	"#ff0087", "#ff00af", "#ff00d7", "#ff00ff", "#ff5f00", "#ff5f5f", // 198-203
	"#ff5f87", "#ff5faf", "#ff5fd7", "#ff5fff", "#ff8700", "#ff875f", // 204-209
	"#ff8787", "#ff87af", "#ff87d7", "#ff87ff", "#ffaf00", "#ffaf5f", // 210-215
	"#ffaf87", "#ffafaf", "#ffafd7", "#ffafff", "#ffd700", "#ffd75f", // 216-221
	"#ffd787", "#ffd7af", "#ffd7d7", "#ffd7ff", "#ffff00", "#ffff5f", // 222-227
	"#ffff87", "#ffffaf", "#ffffd7", "#ffffff", "#080808", "#121212", // 228-233
	"#1c1c1c", "#262626", "#303030", "#3a3a3a", "#444444", "#4e4e4e", // 234-239
	"#585858", "#626262", "#6c6c6c", "#767676", "#808080", "#8a8a8a", // 240-245
	"#949494", "#9e9e9e", "#a8a8a8", "#b2b2b2", "#bcbcbc", "#c6c6c6", // 246-251
	"#d0d0d0", "#dadada", "#e4e4e4", "#eeeeee", // 252-255
}
