package dataset

import "github.com/pezwarinaan/id3/feature"

/*
Vegetation returns the reference dataset: seven terrain observations
predicting the vegetation found on them from the presence of a stream,
the slope and the elevation. The id column identifies each observation.
*/
func Vegetation() *Dataset {
	ds, err := New([]Column{
		{feature.New("id", feature.KindInt), ints(1, 2, 3, 4, 5, 6, 7)},
		{feature.New("stream", feature.KindBool), bools(false, true, true, false, false, true, true)},
		{feature.New("slope", feature.KindLabel), labels("steep", "moderate", "steep", "steep", "flat", "steep", "steep")},
		{feature.New("elevation", feature.KindLabel), labels("high", "low", "medium", "medium", "high", "highest", "high")},
		{feature.New("vegetation", feature.KindLabel), labels("chapparal", "riparian", "riparian", "chapparal", "conifer", "conifer", "chapparal")},
	}, "vegetation", "id")
	if err != nil {
		panic(err)
	}
	return ds
}

func ints(is ...int64) []feature.Value {
	result := make([]feature.Value, 0, len(is))
	for _, i := range is {
		result = append(result, feature.Int(i))
	}
	return result
}

func bools(bs ...bool) []feature.Value {
	result := make([]feature.Value, 0, len(bs))
	for _, b := range bs {
		result = append(result, feature.Bool(b))
	}
	return result
}

func labels(ls ...string) []feature.Value {
	result := make([]feature.Value, 0, len(ls))
	for _, l := range ls {
		result = append(result, feature.Label(l))
	}
	return result
}
