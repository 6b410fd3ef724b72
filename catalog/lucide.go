// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

import (
	"github.com/mdhender/svgicons/renderer"
)

// Geometry from Lucide (https://lucide.dev, ISC License).

var (
	p        = renderer.PathNode
	circle   = renderer.CircleNode
	rect     = renderer.RectNode
	line     = renderer.LineNode
	polyline = renderer.PolylineNode
	polygon  = renderer.PolygonNode
	group    = renderer.GroupNode
)

type nodes = []renderer.Node

var (
	AlertTriangle = Icon{Name: "alert-triangle", Tags: []string{"warning", "caution"}, Nodes: nodes{
		p("m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 21h16a2 2 0 0 0 1.73-3Z"),
		p("M12 9v4"),
		p("M12 17h.01"),
	}}
	ArrowDown = Icon{Name: "arrow-down", Tags: []string{"direction"}, Nodes: nodes{
		p("M12 5v14"),
		p("m19 12-7 7-7-7"),
	}}
	ArrowLeft = Icon{Name: "arrow-left", Tags: []string{"direction", "back"}, Nodes: nodes{
		p("m12 19-7-7 7-7"),
		p("M19 12H5"),
	}}
	ArrowRight = Icon{Name: "arrow-right", Tags: []string{"direction", "forward"}, Nodes: nodes{
		p("M5 12h14"),
		p("m12 5 7 7-7 7"),
	}}
	ArrowUp = Icon{Name: "arrow-up", Tags: []string{"direction"}, Nodes: nodes{
		p("m5 12 7-7 7 7"),
		p("M12 19V5"),
	}}
	Bell = Icon{Name: "bell", Tags: []string{"notification", "alarm"}, Nodes: nodes{
		p("M6 8a6 6 0 0 1 12 0c0 7 3 9 3 9H3s3-2 3-9"),
		p("M10.3 21a1.94 1.94 0 0 0 3.4 0"),
	}}
	BookOpen = Icon{Name: "book-open", Tags: []string{"read", "campaign"}, Nodes: nodes{
		p("M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"),
		p("M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"),
	}}
	Calendar = Icon{Name: "calendar", Tags: []string{"date", "session"}, Nodes: nodes{
		rect(3, 4, 18, 18, 2).With(renderer.A("ry", 2)),
		line(16, 2, 16, 6),
		line(8, 2, 8, 6),
		line(3, 10, 21, 10),
	}}
	Check = Icon{Name: "check", Tags: []string{"done", "confirm"}, Nodes: nodes{
		p("M20 6 9 17l-5-5"),
	}}
	ChevronDown = Icon{Name: "chevron-down", Tags: []string{"expand"}, Nodes: nodes{
		p("m6 9 6 6 6-6"),
	}}
	ChevronLeft = Icon{Name: "chevron-left", Tags: []string{"previous"}, Nodes: nodes{
		p("m15 18-6-6 6-6"),
	}}
	ChevronRight = Icon{Name: "chevron-right", Tags: []string{"next"}, Nodes: nodes{
		p("m9 18 6-6-6-6"),
	}}
	ChevronUp = Icon{Name: "chevron-up", Tags: []string{"collapse"}, Nodes: nodes{
		p("m18 15-6-6-6 6"),
	}}
	Circle = Icon{Name: "circle", Tags: []string{"shape"}, Nodes: nodes{
		circle(12, 12, 10),
	}}
	CircleDot = Icon{Name: "circle-dot", Tags: []string{"record", "target"}, Nodes: nodes{
		circle(12, 12, 10),
		circle(12, 12, 1).With(renderer.A(renderer.AttrFill, "currentColor")),
	}}
	Clock = Icon{Name: "clock", Tags: []string{"time", "countdown"}, Nodes: nodes{
		circle(12, 12, 10),
		polyline("12 6 12 12 16 14"),
	}}
	Copy = Icon{Name: "copy", Tags: []string{"clipboard", "duplicate"}, Nodes: nodes{
		rect(8, 8, 14, 14, 2).With(renderer.A("ry", 2)),
		p("M4 16c-1.1 0-2-.9-2-2V4c0-1.1.9-2 2-2h10c1.1 0 2 .9 2 2"),
	}}
	Crown = Icon{Name: "crown", Tags: []string{"gm", "leader"}, Nodes: nodes{
		p("M11.562 3.266a.5.5 0 0 1 .876 0L15.39 8.87a1 1 0 0 0 1.516.294L21.183 5.5a.5.5 0 0 1 .798.519l-2.834 10.246a1 1 0 0 1-.956.734H5.81a1 1 0 0 1-.957-.734L2.02 6.02a.5.5 0 0 1 .798-.519l4.276 3.664a1 1 0 0 0 1.516-.294z"),
		p("M5 21h14"),
	}}
	Download = Icon{Name: "download", Tags: []string{"save", "export"}, Nodes: nodes{
		p("M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4"),
		polyline("7 10 12 15 17 10"),
		line(12, 15, 12, 3),
	}}
	ExternalLink = Icon{Name: "external-link", Tags: []string{"open", "new window"}, Nodes: nodes{
		p("M15 3h6v6"),
		p("M10 14 21 3"),
		p("M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"),
	}}
	Eye = Icon{Name: "eye", Tags: []string{"view", "visible"}, Nodes: nodes{
		p("M2 12s3-7 10-7 10 7 10 7-3 7-10 7-10-7-10-7Z"),
		circle(12, 12, 3),
	}}
	File = Icon{Name: "file", Tags: []string{"document"}, Nodes: nodes{
		p("M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"),
		p("M14 2v4a2 2 0 0 0 2 2h4"),
	}}
	Flame = Icon{Name: "flame", Tags: []string{"fire", "damage"}, Nodes: nodes{
		p("M8.5 14.5A2.5 2.5 0 0 0 11 12c0-1.38-.5-2-1-3-1.072-2.143-.224-4.054 2-6 .5 2.5 2 4.9 4 6.5 2 1.6 3 3.5 3 5.5a7 7 0 1 1-14 0c0-1.153.433-2.294 1-3a2.5 2.5 0 0 0 2.5 2.5z"),
	}}
	Folder = Icon{Name: "folder", Tags: []string{"directory"}, Nodes: nodes{
		p("M20 20a2 2 0 0 0 2-2V8a2 2 0 0 0-2-2h-7.9a2 2 0 0 1-1.69-.9L9.6 3.9A2 2 0 0 0 7.93 3H4a2 2 0 0 0-2 2v13a2 2 0 0 0 2 2Z"),
	}}
	Heart = Icon{Name: "heart", Tags: []string{"like", "favorite"}, Nodes: nodes{
		p("M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"),
	}}
	House = Icon{Name: "house", Tags: []string{"home"}, Nodes: nodes{
		p("m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"),
		polyline("9 22 9 12 15 12 15 22"),
	}}
	Info = Icon{Name: "info", Tags: []string{"help", "about"}, Nodes: nodes{
		circle(12, 12, 10),
		p("M12 16v-4"),
		p("M12 8h.01"),
	}}
	Key = Icon{Name: "key", Tags: []string{"secret", "password"}, Nodes: nodes{
		circle(7.5, 15.5, 5.5),
		p("m21 2-9.6 9.6"),
		p("m15.5 7.5 3 3L22 7l-3-3"),
	}}
	LayoutGrid = Icon{Name: "layout-grid", Tags: []string{"tiles", "gallery"}, Nodes: nodes{
		group(nil,
			rect(3, 3, 7, 7, 1),
			rect(14, 3, 7, 7, 1),
			rect(14, 14, 7, 7, 1),
			rect(3, 14, 7, 7, 1),
		),
	}}
	Lock = Icon{Name: "lock", Tags: []string{"secure", "private"}, Nodes: nodes{
		rect(3, 11, 18, 11, 2).With(renderer.A("ry", 2)),
		p("M7 11V7a5 5 0 0 1 10 0v4"),
	}}
	LogOut = Icon{Name: "log-out", Tags: []string{"sign out", "exit"}, Nodes: nodes{
		p("M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"),
		polyline("16 17 21 12 16 7"),
		line(21, 12, 9, 12),
	}}
	Mail = Icon{Name: "mail", Tags: []string{"email", "invite"}, Nodes: nodes{
		rect(2, 4, 20, 16, 2),
		p("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"),
	}}
	Map = Icon{Name: "map", Tags: []string{"location", "environment"}, Nodes: nodes{
		polygon("3 6 9 3 15 6 21 3 21 18 15 21 9 18 3 21"),
		line(9, 3, 9, 18),
		line(15, 6, 15, 21),
	}}
	Menu = Icon{Name: "menu", Tags: []string{"hamburger", "navigation"}, Omit: renderer.OmitLinejoin, Nodes: nodes{
		line(4, 12, 20, 12),
		line(4, 6, 20, 6),
		line(4, 18, 20, 18),
	}}
	MessageCircle = Icon{Name: "message-circle", Tags: []string{"chat", "comment"}, Nodes: nodes{
		p("M7.9 20A9 9 0 1 0 4 16.1L2 22Z"),
	}}
	Minus = Icon{Name: "minus", Tags: []string{"subtract"}, Omit: renderer.OmitLinejoin, Nodes: nodes{
		p("M5 12h14"),
	}}
	Moon = Icon{Name: "moon", Tags: []string{"dark", "night"}, Nodes: nodes{
		p("M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"),
	}}
	Plus = Icon{Name: "plus", Tags: []string{"add", "new"}, Omit: renderer.OmitLinejoin, Nodes: nodes{
		p("M5 12h14"),
		p("M12 5v14"),
	}}
	Search = Icon{Name: "search", Tags: []string{"find", "magnifier"}, Nodes: nodes{
		circle(11, 11, 8),
		p("m21 21-4.3-4.3"),
	}}
	Settings = Icon{Name: "settings", Tags: []string{"gear", "preferences"}, Nodes: nodes{
		p("M12.22 2h-.44a2 2 0 0 0-2 2v.18a2 2 0 0 1-1 1.73l-.43.25a2 2 0 0 1-2 0l-.15-.08a2 2 0 0 0-2.73.73l-.22.38a2 2 0 0 0 .73 2.73l.15.1a2 2 0 0 1 1 1.72v.51a2 2 0 0 1-1 1.74l-.15.09a2 2 0 0 0-.73 2.73l.22.38a2 2 0 0 0 2.73.73l.15-.08a2 2 0 0 1 2 0l.43.25a2 2 0 0 1 1 1.73V20a2 2 0 0 0 2 2h.44a2 2 0 0 0 2-2v-.18a2 2 0 0 1 1-1.73l.43-.25a2 2 0 0 1 2 0l.15.08a2 2 0 0 0 2.73-.73l.22-.39a2 2 0 0 0-.73-2.73l-.15-.08a2 2 0 0 1-1-1.74v-.5a2 2 0 0 1 1-1.74l.15-.09a2 2 0 0 0 .73-2.73l-.22-.38a2 2 0 0 0-2.73-.73l-.15.08a2 2 0 0 1-2 0l-.43-.25a2 2 0 0 1-1-1.73V4a2 2 0 0 0-2-2z"),
		circle(12, 12, 3),
	}}
	Shield = Icon{Name: "shield", Tags: []string{"armor", "security"}, Nodes: nodes{
		p("M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10"),
	}}
	Sparkle = Icon{Name: "sparkle", Tags: []string{"generic", "magic"}, Nodes: nodes{
		p("M9.937 15.5A2 2 0 0 0 8.5 14.063l-6.135-1.582a.5.5 0 0 1 0-.962L8.5 9.936A2 2 0 0 0 9.937 8.5l1.582-6.135a.5.5 0 0 1 .963 0L14.063 8.5A2 2 0 0 0 15.5 9.937l6.135 1.581a.5.5 0 0 1 0 .964L15.5 14.063a2 2 0 0 0-1.437 1.437l-1.582 6.135a.5.5 0 0 1-.963 0z"),
	}}
	Square = Icon{Name: "square", Tags: []string{"shape"}, Nodes: nodes{
		rect(3, 3, 18, 18, 2),
	}}
	Star = Icon{Name: "star", Tags: []string{"favorite", "rating"}, Nodes: nodes{
		polygon("12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"),
	}}
	Sun = Icon{Name: "sun", Tags: []string{"light", "day"}, Nodes: nodes{
		circle(12, 12, 4),
		p("M12 2v2"),
		p("M12 20v2"),
		p("m4.93 4.93 1.41 1.41"),
		p("m17.66 17.66 1.41 1.41"),
		p("M2 12h2"),
		p("M20 12h2"),
		p("m6.34 17.66-1.41 1.41"),
		p("m19.07 4.93-1.41 1.41"),
	}}
	Trash = Icon{Name: "trash", Tags: []string{"delete", "remove"}, Nodes: nodes{
		p("M3 6h18"),
		p("M19 6v14c0 1-1 2-2 2H7c-1 0-2-1-2-2V6"),
		p("M8 6V4c0-1 1-2 2-2h4c1 0 2 1 2 2v2"),
	}}
	Upload = Icon{Name: "upload", Tags: []string{"import"}, Nodes: nodes{
		p("M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4"),
		polyline("17 8 12 3 7 8"),
		line(12, 3, 12, 15),
	}}
	User = Icon{Name: "user", Tags: []string{"person", "profile"}, Nodes: nodes{
		p("M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"),
		circle(12, 7, 4),
	}}
	Users = Icon{Name: "users", Tags: []string{"people", "participants"}, Nodes: nodes{
		p("M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"),
		circle(9, 7, 4),
		p("M22 21v-2a4 4 0 0 0-3-3.87"),
		p("M16 3.13a4 4 0 0 1 0 7.75"),
	}}
	X = Icon{Name: "x", Tags: []string{"close", "cancel"}, Omit: renderer.OmitLinejoin, Nodes: nodes{
		p("M18 6 6 18"),
		p("m6 6 12 12"),
	}}
)

var lucide = mustSet("lucide",
	AlertTriangle, ArrowDown, ArrowLeft, ArrowRight, ArrowUp,
	Bell, BookOpen, Calendar, Check, ChevronDown, ChevronLeft,
	ChevronRight, ChevronUp, Circle, CircleDot, Clock, Copy, Crown,
	Download, ExternalLink, Eye, File, Flame, Folder, Heart, House,
	Info, Key, LayoutGrid, Lock, LogOut, Mail, Map, Menu,
	MessageCircle, Minus, Moon, Plus, Search, Settings, Shield,
	Sparkle, Square, Star, Sun, Trash, Upload, User, Users, X,
)

// Lucide returns the Lucide icon set, drawn at the default stroke width.
func Lucide() *Set {
	return lucide
}
