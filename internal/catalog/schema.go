package catalog

// Element and attribute names of the lyrics database document:
//
//	<database>
//	  <artist name="...">
//	    <album title="..." tracks="N">
//	      <track num="K" name="...">lyrics text</track>
//	    </album>
//	  </artist>
//	</database>
const (
	tagDatabase = "database"
	tagArtist   = "artist"
	tagAlbum    = "album"
	tagTrack    = "track"

	attrName   = "name"
	attrTitle  = "title"
	attrTracks = "tracks"
	attrNum    = "num"
)
