// Package literate converts literate source text into Markdown.
//
// Lines that start with the bird-track marker "> " are code. Each run of
// consecutive code lines is emitted as a single fenced block tagged
// haskell; every other line passes through untouched:
//
//	Hello.
//
//	> main = putStrLn "hi"
//	> -- done
//
// becomes
//
//	Hello.
//
//	```haskell
//	main = putStrLn "hi"
//	-- done
//	```
package literate
