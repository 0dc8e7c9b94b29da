// Package q3log provides parsing and analysis of Quake 3 Arena server logs.
//
// This package allows you to:
//   - Parse games.log lines into structured events
//   - Reconstruct the discrete games a log file contains
//   - Aggregate kill statistics per game and across the whole file
//   - Follow a live games.log for new events
//
// # Basic Usage
//
// To analyze a whole log file:
//
//	seg, err := q3log.AnalyzeFile(ctx, "games.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, game := range seg.Games() {
//	    fmt.Printf("game %d: %d events, %d kills\n",
//	        game.ID, len(game.Events), len(game.Kills()))
//	}
//	for _, tally := range q3log.SortedTallies(seg.Killers()) {
//	    fmt.Printf("%s: %d kills\n", tally.Name, tally.Count)
//	}
//
// To parse a single log line:
//
//	ev, ok := q3log.ParseLine(line)
//	if ok {
//	    // process ev
//	}
//
// Game reconstruction is strictly batch: feed every event of the file
// through a Segmenter, then call Flush before reading results. The
// Watcher only streams per-line events and never builds Game records.
package q3log
