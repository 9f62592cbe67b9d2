package rain

import (
	"strconv"

	"rainfall/internal/core"
)

// Parameters exposes the current tunables for diagnostic display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Spawn",
			Params: []core.Parameter{
				floatParam("spawn_rate", "Spawn rate per 64 cols", params.SpawnRate),
				floatParam("vel_near", "Near fall velocity", params.VelNear),
				floatParam("vel_far", "Far fall velocity", params.VelFar),
			},
		},
		{
			Name: "Collision",
			Params: []core.Parameter{
				intParam("depth_margin", "Depth margin", params.DepthMargin),
				floatParam("ground_near", "Ground line near", params.GroundNear),
				floatParam("ground_far", "Ground line far", params.GroundFar),
				floatParam("surface_splash_chance", "Surface splash chance", params.SurfaceSplashChance),
				floatParam("ground_splash_chance", "Ground splash chance", params.GroundSplashChance),
				floatParam("slide_chance", "Slide chance", params.SlideChance),
			},
		},
		{
			Name: "Lifecycles",
			Params: []core.Parameter{
				intParam("splash_frames", "Splash frames", params.SplashFrames),
				floatParam("flow_speed", "Flow speed", params.FlowSpeed),
				intParam("stream_life", "Stream life", params.StreamLife),
				intParam("stream_fall_splash_life", "Stream fall splash life", params.StreamFallSplashLife),
			},
		},
		{
			Name: "Capacity",
			Params: []core.Parameter{
				intParam("max_droplets", "Max droplets", params.MaxDroplets),
				intParam("max_splashes", "Max splashes", params.MaxSplashes),
				intParam("max_streams", "Max streams", params.MaxStreams),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
