// Package tcellsource turns terminal mouse input into gesture events.
//
// Terminals report scrolling as discrete wheel ticks with no begin or
// end markers, so the Translator synthesizes the sequence structure
// the dispatch queue expects: the first tick opens a scroll with a
// scroll-begin, further ticks become scroll-updates, and a quiet
// period closes it with a scroll-end. Ctrl+wheel maps to a pinch
// sequence the same way. When a scroll ends above the configured
// velocity threshold the translator can emit a fling-start so the
// fling layer takes over.
//
// Source pumps a tcell.Screen's events through a Translator into a
// Submitter, typically the dispatch queue.
package tcellsource
