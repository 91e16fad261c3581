/*
Package format is a reentrant, allocation-conscious printf-style text
formatting engine for hosts where the standard library formatter is too
heavy, too permissive, or simply not the right shape for the job.

The engine never buffers the whole result: a caller supplies a Sink, and
formatted bytes are streamed to it as they are produced. Three feature
tiers are available, selected at build time with Go build tags:

	full  (default, no tag)  full C99 conversion set plus grouping,
	                         centering, SI/engineering notation, custom
	                         bases, length qualifiers and fixed-point.
	tiny  (-tags tiny)       the micro conversion set plus format
	                         continuation.
	micro (-tags micro)      the smallest conversion set, writing one
	                         byte at a time through a fixed sink.

See Sink and Format for the full-tier entry point.
*/
package format
