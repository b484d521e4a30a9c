// Package catalog loads, validates and saves lyrics databases.
//
// A lyrics database is an XML document with a fixed three-level schema:
//
//	<database>
//	  <artist name="Bowie">
//	    <album title="Low" tracks="11">
//	      <track num="1" name="Speed of Life"></track>
//	    </album>
//	  </artist>
//	</database>
//
// # Loading
//
//	c, err := catalog.Load("lyrics.xml")
//	if err != nil {
//	    var cerr *catalog.Error
//	    if errors.As(err, &cerr) {
//	        fmt.Println(cerr.Kind, cerr.Tag, cerr.Attribute)
//	    }
//	}
//
// Loading is all or nothing: the first structural or conversion problem aborts
// the load and no catalog is returned. Unknown tags and attributes are rejected.
// Artists and albums keep document order; tracks are stable-sorted by number.
//
// # Saving
//
//	err := c.Save("") // back to the file it was loaded from
//
// Albums keep their declared track count, even when it differs from the
// number of tracks present.
package catalog
