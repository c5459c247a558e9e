// Package readclip turns web pages (or raw shared text) into normalized
// articles and appends them to a pending queue shared with a reader
// application. The extraction pipeline is deliberately pattern-based:
// it strips markup and boilerplate with ordered text transforms rather
// than building a DOM, which is all that realistic news/blog article
// markup requires.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g., sqlite/, redis/, extract/).
package readclip
