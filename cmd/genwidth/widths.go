package main

// widthMenu is the default set of bit widths cmd/genwidth emits concrete
// types for. spec.md §9's Design Notes sanction exactly this menu-plus-
// escape-hatch tradeoff; this table is the menu.
var widthMenu = []int{64, 128, 256}
