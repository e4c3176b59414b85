package service

import (
	"strconv"

	"moodmap/models"
	"moodmap/pkg/geo"
	"moodmap/types"
)

// composePost 对外投影，只输出计数
func composePost(p *models.Post, authors map[int64]types.AuthorBrief, center *geo.Point) types.PostView {
	v := types.PostView{
		ID:            strconv.FormatInt(p.ID, 10),
		Emotion:       p.Emotion,
		Reason:        p.Reason,
		Location:      p.Location,
		Timestamp:     p.Timestamp,
		Privacy:       p.Privacy,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		People:        p.People,
		Activities:    p.Activities,
	}
	if v.People == nil {
		v.People = []string{}
	}
	if v.Activities == nil {
		v.Activities = []string{}
	}
	if brief, ok := authors[p.AuthorID]; ok {
		v.Author = &brief
	}
	if center != nil {
		if pt, ok := p.Point(); ok {
			d := geo.DistanceKm(center.Lat, center.Lng, pt.Lat, pt.Lng)
			v.DistanceKm = &d
		}
	}
	return v
}
